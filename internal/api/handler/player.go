package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mhollis/gamewire/internal/api/middleware"
	"github.com/mhollis/gamewire/internal/api/request"
	"github.com/mhollis/gamewire/internal/api/response"
	"github.com/mhollis/gamewire/internal/model"
	"github.com/mhollis/gamewire/internal/realtime"
	"github.com/mhollis/gamewire/internal/services/game"
)

// PlayerHandler handles roster endpoints
type PlayerHandler struct {
	gameController *game.Controller
	broadcaster    *realtime.Broadcaster
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(gameController *game.Controller, broadcaster *realtime.Broadcaster) *PlayerHandler {
	return &PlayerHandler{
		gameController: gameController,
		broadcaster:    broadcaster,
	}
}

// Add handles POST /games/{gameId}/players
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	gameID := model.GameID(mux.Vars(r)["gameId"])

	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := request.Validate(req); err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	player, err := h.gameController.AddPlayer(r.Context(), gameID, user.ID, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.PlayerJoined(gameID, *player)

	response.JSON(w, http.StatusCreated, response.PlayerResponse{Player: response.PlayerFromModel(*player)})
}

// List handles GET /games/{gameId}/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	gameID := model.GameID(mux.Vars(r)["gameId"])

	players, err := h.gameController.ListPlayers(r.Context(), gameID, user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(gameID, players))
}

// Remove handles DELETE /games/{gameId}/players/{playerId}
func (h *PlayerHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	vars := mux.Vars(r)
	gameID := model.GameID(vars["gameId"])
	playerID := model.PlayerID(vars["playerId"])

	if err := h.gameController.RemovePlayer(r.Context(), gameID, user.ID, playerID); err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.PlayerRemoved(gameID, playerID)

	response.JSON(w, http.StatusOK, response.DeletedResponse{Deleted: true})
}
