package handlers

import (
	customErr "Seenit/internal/app/errors"
	"Seenit/internal/app/httputils"
	"Seenit/internal/app/models"
	userUseCase "Seenit/internal/app/user/usecase"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type Handlers struct {
	useCase  userUseCase.UseCase
	validate *validator.Validate
}

func NewHandler(useCase userUseCase.UseCase) *Handlers {
	return &Handlers{
		useCase:  useCase,
		validate: validator.New(),
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	auth, err := h.useCase.Register(req)
	if errors.Is(err, customErr.ErrDuplicate) {
		httputils.RespondMessage(w, http.StatusConflict, "username or email is already registered")
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusCreated, auth)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	auth, err := h.useCase.Login(req)
	if errors.Is(err, customErr.ErrBadPassword) {
		httputils.RespondMessage(w, http.StatusUnauthorized, "wrong username or password")
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusOK, auth)
}

func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	auth, err := h.useCase.Refresh(req.RefreshToken)
	if errors.Is(err, customErr.ErrBadToken) {
		httputils.RespondMessage(w, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusOK, auth)
}

func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := strconv.ParseUint(params["id"], 10, 64)
	if err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "bad user id: "+params["id"])
		return
	}

	profile, err := h.useCase.Profile(id)
	if errors.Is(err, customErr.ErrUserNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find user by id: "+params["id"])
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusOK, profile)
}
