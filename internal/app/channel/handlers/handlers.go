package handlers

import (
	channelUseCase "Seenit/internal/app/channel/usecase"
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
	useCase channelUseCase.UseCase
}

func NewHandler(useCase channelUseCase.UseCase) *Handlers {
	return &Handlers{
		useCase: useCase,
	}
}

func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	if _, ok := middleware.UserID(r.Context()); !ok {
		httputils.RespondMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var channel models.Channel
	if err := json.NewDecoder(r.Body).Decode(&channel); err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "malformed request body")
		return
	}

	channel, err := h.useCase.CreateChannel(channel)
	if errors.Is(err, customErr.ErrEmptyText) {
		httputils.RespondMessage(w, http.StatusBadRequest, "channel name must not be empty")
		return
	}
	if errors.Is(err, customErr.ErrDuplicate) {
		httputils.RespondMessage(w, http.StatusConflict, "channel already exists: "+channel.Name)
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusCreated, channel)
}

func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	channels, err := h.useCase.GetChannels()
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusOK, channels)
}

func (h *Handlers) Details(w http.ResponseWriter, r *http.Request) {
	id, ok := channelID(w, r)
	if !ok {
		return
	}
	channel, err := h.useCase.GetChannel(id)
	if errors.Is(err, customErr.ErrChannelNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find channel by id: "+mux.Vars(r)["id"])
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusOK, channel)
}

func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	h.toggleSubscription(w, r, h.useCase.Subscribe)
}

func (h *Handlers) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	h.toggleSubscription(w, r, h.useCase.Unsubscribe)
}

func (h *Handlers) IsSubscribed(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputils.RespondMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := channelID(w, r)
	if !ok {
		return
	}

	subscribed, err := h.useCase.IsSubscribed(id, userID)
	if errors.Is(err, customErr.ErrChannelNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find channel by id: "+mux.Vars(r)["id"])
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusOK, models.SubscriptionStatus{Subscribed: subscribed})
}

func (h *Handlers) toggleSubscription(w http.ResponseWriter, r *http.Request, toggle func(uint64, uint64) error) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputils.RespondMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := channelID(w, r)
	if !ok {
		return
	}

	err := toggle(id, userID)
	if errors.Is(err, customErr.ErrChannelNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find channel by id: "+mux.Vars(r)["id"])
		return
	}
	if errors.Is(err, customErr.ErrUserNotFound) {
		httputils.RespondMessage(w, http.StatusNotFound, "Can't find user")
		return
	}
	if err != nil {
		httputils.Respond(w, http.StatusInternalServerError, nil)
		log.Println(err)
		return
	}
	httputils.Respond(w, http.StatusOK, nil)
}

func channelID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	params := mux.Vars(r)
	id, err := strconv.ParseUint(params["id"], 10, 64)
	if err != nil {
		httputils.RespondMessage(w, http.StatusBadRequest, "bad channel id: "+params["id"])
		return 0, false
	}
	return id, true
}
