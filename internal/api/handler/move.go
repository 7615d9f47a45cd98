package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mhollis/gamewire/internal/api/middleware"
	"github.com/mhollis/gamewire/internal/api/request"
	"github.com/mhollis/gamewire/internal/api/response"
	"github.com/mhollis/gamewire/internal/model"
	"github.com/mhollis/gamewire/internal/realtime"
	"github.com/mhollis/gamewire/internal/services/game"
)

// MoveHandler handles move endpoints
type MoveHandler struct {
	gameController *game.Controller
	broadcaster    *realtime.Broadcaster
}

// NewMoveHandler creates a new move handler
func NewMoveHandler(gameController *game.Controller, broadcaster *realtime.Broadcaster) *MoveHandler {
	return &MoveHandler{
		gameController: gameController,
		broadcaster:    broadcaster,
	}
}

// Add handles POST /games/{gameId}/moves
func (h *MoveHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	gameID := model.GameID(mux.Vars(r)["gameId"])

	var req request.AddMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if err := request.Validate(req); err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	move, player, err := h.gameController.AddMove(r.Context(), gameID, user.ID, model.PlayerID(req.PlayerID), req.Data)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcaster.Move(gameID, *move, player.Name)

	response.JSON(w, http.StatusCreated, response.MoveResponse{Move: response.MoveFromModel(*move)})
}

// List handles GET /games/{gameId}/moves
func (h *MoveHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	gameID := model.GameID(mux.Vars(r)["gameId"])

	moves, err := h.gameController.ListMoves(r.Context(), gameID, user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MovesFromModel(gameID, moves))
}

// Get handles GET /games/{gameId}/moves/{moveId}
func (h *MoveHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	vars := mux.Vars(r)
	gameID := model.GameID(vars["gameId"])
	moveID := model.MoveID(vars["moveId"])

	move, err := h.gameController.GetMove(r.Context(), gameID, user.ID, moveID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveResponse{Move: response.MoveFromModel(*move)})
}
