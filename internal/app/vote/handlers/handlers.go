package handlers

import (
	customErr "Seenit/internal/app/errors"
	"Seenit/internal/app/httputils"
	"Seenit/internal/app/middleware"
	"Seenit/internal/app/models"
	voteUseCase "Seenit/internal/app/vote/usecase"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
)

type Handlers struct {
	useCase voteUseCase.UseCase
}

func NewHandler(useCase voteUseCase.UseCase) *Handlers {
	return &Handlers{
		useCase: useCase,
	}
}

func (h *Handlers) Upvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, h.useCase.Upvote)
}

func (h *Handlers) Downvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, h.useCase.Downvote)
}

func (h *Handlers) vote(w http.ResponseWriter, r *http.Request, apply func(models.VoteRequest, uint64) (models.VoteResult, error)) {
	defer r.Body.Close()
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputils.RespondMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req models.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "malformed request body")
		return
	}

	result, err := apply(req, userID)
	if errors.Is(err, customErr.ErrInvalidField) {
		httputils.RespondMessage(w, http.StatusBadRequest, "unknown votable type: "+req.Type)
		return
	}
	if errors.Is(err, customErr.ErrPostNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find post by id: "+strconv.FormatUint(req.ID, 10))
		return
	}
	if errors.Is(err, customErr.ErrCommentNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find comment by id: "+strconv.FormatUint(req.ID, 10))
		return
	}
	if errors.Is(err, customErr.ErrUserNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find voting user")
		return
	}
	if errors.Is(err, customErr.ErrConflict) {
		httputils.RespondMessage(w, http.StatusConflict, "vote lost a concurrent update, retry")
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusOK, result)
}
