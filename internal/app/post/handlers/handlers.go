package handlers

import (
	customErr "Seenit/internal/app/errors"
	"Seenit/internal/app/httputils"
	"Seenit/internal/app/middleware"
	"Seenit/internal/app/models"
	postUseCase "Seenit/internal/app/post/usecase"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handlers struct {
	useCase postUseCase.UseCase
}

func NewHandler(useCase postUseCase.UseCase) *Handlers {
	return &Handlers{
		useCase: useCase,
	}
}

func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputils.RespondMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}
	params := mux.Vars(r)
	channelID, err := strconv.ParseUint(params["id"], 10, 64)
	if err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "bad channel id: "+params["id"])
		return
	}
	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "malformed request body")
		return
	}

	post, err = h.useCase.CreatePost(channelID, userID, post)
	if errors.Is(err, customErr.ErrEmptyText) {
		httputils.RespondMessage(w, http.StatusBadRequest, "post title and text must not be empty")
		return
	}
	if errors.Is(err, customErr.ErrChannelNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find channel by id: "+params["id"])
		return
	}
	if errors.Is(err, customErr.ErrUserNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find post author")
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusCreated, post)
}

func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	channelID, err := strconv.ParseUint(params["id"], 10, 64)
	if err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "bad channel id: "+params["id"])
		return
	}
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	offset, _ := strconv.ParseInt(r.URL.Query().Get("offset"), 10, 64)

	posts, err := h.useCase.GetPosts(channelID, limit, offset)
	if errors.Is(err, customErr.ErrChannelNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find channel by id: "+params["id"])
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusOK, posts)
}

func (h *Handlers) Details(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := strconv.ParseUint(params["id"], 10, 64)
	if err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "bad post id: "+params["id"])
		return
	}

	post, err := h.useCase.GetPost(id)
	if errors.Is(err, customErr.ErrPostNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find post by id: "+params["id"])
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusOK, post)
}
