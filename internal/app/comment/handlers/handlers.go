package handlers

import (
	commentUseCase "Seenit/internal/app/comment/usecase"
	customErr "Seenit/internal/app/errors"
	"Seenit/internal/app/httputils"
	"Seenit/internal/app/middleware"
	"Seenit/internal/app/models"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handlers struct {
	useCase commentUseCase.UseCase
}

func NewHandler(useCase commentUseCase.UseCase) *Handlers {
	return &Handlers{
		useCase: useCase,
	}
}

func (h *Handlers) CreateRoot(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputils.RespondMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}
	params := mux.Vars(r)
	postID, err := strconv.ParseUint(params["id"], 10, 64)
	if err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "bad post id: "+params["id"])
		return
	}
	var comment models.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "malformed request body")
		return
	}

	comment, err = h.useCase.CreateRootComment(postID, userID, comment)
	if errors.Is(err, customErr.ErrEmptyText) {
		httputils.RespondMessage(w, http.StatusBadRequest, "comment text must not be empty")
		return
	}
	if errors.Is(err, customErr.ErrPostNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find post by id: "+params["id"])
		return
	}
	if errors.Is(err, customErr.ErrUserNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find comment author")
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusCreated, comment)
}

func (h *Handlers) CreateReply(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputils.RespondMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}
	params := mux.Vars(r)
	parentID, err := strconv.ParseUint(params["id"], 10, 64)
	if err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "bad comment id: "+params["id"])
		return
	}
	var comment models.Comment
	if err := json.NewDecoder(r.Body).Decode(&comment); err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "malformed request body")
		return
	}

	comment, err = h.useCase.CreateReply(parentID, userID, comment)
	if errors.Is(err, customErr.ErrEmptyText) {
		httputils.RespondMessage(w, http.StatusBadRequest, "comment text must not be empty")
		return
	}
	if errors.Is(err, customErr.ErrCommentNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find parent comment by id: "+params["id"])
		return
	}
	if errors.Is(err, customErr.ErrUserNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find comment author")
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusCreated, comment)
}

func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	postID, err := strconv.ParseUint(params["id"], 10, 64)
	if err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "bad post id: "+params["id"])
		return
	}

	comments, err := h.useCase.GetComments(postID)
	if errors.Is(err, customErr.ErrPostNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find post by id: "+params["id"])
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusOK, comments)
}
