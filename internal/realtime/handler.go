package realtime

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"nhooyr.io/websocket"

	"github.com/mhollis/gamewire/internal/model"
	"github.com/mhollis/gamewire/internal/services/auth"
	"github.com/mhollis/gamewire/internal/storage"
)

// Handshake close codes. Sockets that fail the handshake are closed with
// one of these and never enter the registry.
const (
	CloseMissingParam websocket.StatusCode = 4000
	CloseInvalidToken websocket.StatusCode = 4001
	CloseGameNotFound websocket.StatusCode = 4002
	CloseAccessDenied websocket.StatusCode = 4003
)

// Handler upgrades HTTP requests to websocket connections, runs the
// authenticated handshake, and manages the connection lifecycle.
type Handler struct {
	hub         *Hub
	authService *auth.Service
	storage     storage.Storage
	logger      *slog.Logger
}

// NewHandler creates a websocket handler backed by the given hub.
func NewHandler(hub *Hub, authService *auth.Service, storage storage.Storage, logger *slog.Logger) *Handler {
	return &Handler{
		hub:         hub,
		authService: authService,
		storage:     storage,
		logger:      logger.With(slog.String("component", "realtime")),
	}
}

// ServeHTTP handles GET /ws?token=<apiKey>&gameId=<id>. The handshake
// authenticates the token, checks the owner-or-player predicate against
// the game, and only then admits the socket to the registry and sends the
// connected event.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Cross-origin clients are expected; auth is the token.
	})
	if err != nil {
		h.logger.Debug("websocket accept failed", slog.String("error", err.Error()))
		return
	}

	query := r.URL.Query()
	token := query.Get("token")
	gameID := model.GameID(query.Get("gameId"))
	if token == "" || gameID == "" {
		conn.Close(CloseMissingParam, "token and gameId query parameters are required")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), token)
	if err != nil {
		conn.Close(CloseInvalidToken, "invalid token")
		return
	}

	game, err := h.storage.GetGame(r.Context(), gameID)
	if err != nil {
		conn.Close(CloseGameNotFound, "game not found")
		return
	}

	if !game.IsParticipant(user.ID) {
		conn.Close(CloseAccessDenied, "access denied")
		return
	}

	client := newClient(conn, gameID, user)
	connCtx := h.hub.register(client)
	defer h.hub.unregister(client)

	// Confirm admission before any broadcast can reach this socket's pump.
	h.hub.Broadcast(gameID, model.NewConnectedEvent(gameID, user.ID, user.Username))

	h.readLoop(r.Context(), connCtx, client)

	conn.Close(websocket.StatusNormalClosure, "")
}

// readLoop blocks until the socket closes or errors. Clients do not send
// application frames; reading serves only to detect the close.
func (h *Handler) readLoop(reqCtx, connCtx context.Context, c *Client) {
	for {
		select {
		case <-connCtx.Done():
			return
		default:
		}

		_, _, err := c.conn.Read(reqCtx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == -1 && !errors.Is(err, context.Canceled) {
				h.logger.Debug("read error",
					slog.String("user_id", string(c.userID)),
					slog.String("error", err.Error()))
			}
			return
		}
	}
}
