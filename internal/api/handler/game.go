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
	"github.com/mhollis/gamewire/internal/services/game"
)

// GameHandler handles game CRUD endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Create handles POST /games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := request.Validate(req); err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	g, err := h.gameController.CreateGame(r.Context(), user.ID, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameResponse{Game: response.GameFromModel(g)})
}

// List handles GET /games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	games, err := h.gameController.ListGames(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GamesFromModel(games))
}

// Get handles GET /games/{gameId}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	gameID := model.GameID(mux.Vars(r)["gameId"])

	g, err := h.gameController.GetGame(r.Context(), gameID, user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameResponse{Game: response.GameFromModel(g)})
}

// Update handles PUT /games/{gameId}
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	gameID := model.GameID(mux.Vars(r)["gameId"])

	var req request.UpdateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if err := request.Validate(req); err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	g, err := h.gameController.UpdateGame(r.Context(), gameID, user.ID, game.UpdateParams{
		Name:   req.Name,
		Status: req.Status,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameResponse{Game: response.GameFromModel(g)})
}

// Delete handles DELETE /games/{gameId}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	gameID := model.GameID(mux.Vars(r)["gameId"])

	if err := h.gameController.DeleteGame(r.Context(), gameID, user.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DeletedResponse{Deleted: true})
}
