package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"nhooyr.io/websocket"

	"github.com/mhollis/gamewire/internal/model"
)

// Hub is the process-wide registry of live sockets, grouped by game.
// Registration and removal are atomic relative to broadcast: no broadcast
// ever observes a partially updated set. Send channels are closed only
// while the write lock is held, and broadcast queues frames under the read
// lock, so a frame is never queued on a closed channel.
type Hub struct {
	mu     sync.RWMutex
	games  map[model.GameID]map[*Client]struct{}
	cancel map[*Client]context.CancelFunc
	closed bool
	logger *slog.Logger
}

// NewHub creates an empty registry.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		games:  make(map[model.GameID]map[*Client]struct{}),
		cancel: make(map[*Client]context.CancelFunc),
		logger: logger.With(slog.String("component", "realtime")),
	}
}

// register admits a client to its game's set and starts its write pump.
// The returned context is cancelled when the client is removed or the hub
// shuts down.
func (h *Hub) register(c *Client) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		cancel()
		c.conn.Close(websocket.StatusGoingAway, "server shutting down")
		return ctx
	}
	if h.games[c.gameID] == nil {
		h.games[c.gameID] = make(map[*Client]struct{})
	}
	h.games[c.gameID][c] = struct{}{}
	h.cancel[c] = cancel
	total := len(h.games[c.gameID])
	h.mu.Unlock()

	go c.writePump(ctx, h.logger)

	h.logger.Info("client connected",
		slog.String("game_id", string(c.gameID)),
		slog.String("user_id", string(c.userID)),
		slog.Int("game_clients", total))

	return ctx
}

// unregister removes a client from its game's set and stops its write
// pump. If the client was registered, a player-disconnected event is
// broadcast to the game's remaining connections.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	cancel, registered := h.cancel[c]
	if registered {
		delete(h.cancel, c)
		delete(h.games[c.gameID], c)
		if len(h.games[c.gameID]) == 0 {
			delete(h.games, c.gameID)
		}
		cancel()
		close(c.send)
	}
	h.mu.Unlock()

	if !registered {
		return
	}

	h.logger.Info("client disconnected",
		slog.String("game_id", string(c.gameID)),
		slog.String("user_id", string(c.userID)))

	h.Broadcast(c.gameID, model.NewPlayerDisconnectedEvent(c.gameID, c.userID, c.username))
}

// Broadcast serializes the event and queues it on every live connection
// registered for the game. Delivery is best-effort: a slow socket's full
// buffer drops the frame for that socket only and never blocks the rest.
func (h *Hub) Broadcast(gameID model.GameID, event any) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", slog.String("error", err.Error()))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.games[gameID] {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("send buffer full, dropping frame",
				slog.String("game_id", string(gameID)),
				slog.String("user_id", string(c.userID)))
		}
	}
}

// ClientCount returns the number of live connections for a game.
func (h *Hub) ClientCount(gameID model.GameID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games[gameID])
}

// Shutdown closes every connection and rejects future registrations.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	h.closed = true
	var clients []*Client
	for c, cancel := range h.cancel {
		cancel()
		close(c.send)
		clients = append(clients, c)
	}
	h.games = make(map[model.GameID]map[*Client]struct{})
	h.cancel = make(map[*Client]context.CancelFunc)
	h.mu.Unlock()

	for _, c := range clients {
		c.conn.Close(websocket.StatusGoingAway, "server shutting down")
	}

	h.logger.Info("realtime hub stopped", slog.Int("disconnected_clients", len(clients)))
}
