package realtime

import (
	"log/slog"

	"github.com/mhollis/gamewire/internal/model"
)

// Broadcaster turns successful store mutations into typed events and hands
// them to the hub for fan-out. Handlers call it only after the mutation has
// returned; the HTTP response is not delayed by delivery.
type Broadcaster struct {
	hub    *Hub
	logger *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    hub,
		logger: logger.With(slog.String("component", "broadcaster")),
	}
}

// PlayerJoined broadcasts that a player was added to a game's roster.
func (b *Broadcaster) PlayerJoined(gameID model.GameID, player model.Player) {
	b.hub.Broadcast(gameID, model.NewPlayerJoinedEvent(gameID, player))
}

// PlayerRemoved broadcasts that a player was removed from a game's roster.
func (b *Broadcaster) PlayerRemoved(gameID model.GameID, playerID model.PlayerID) {
	b.hub.Broadcast(gameID, model.NewPlayerRemovedEvent(gameID, playerID))
}

// Move broadcasts a newly recorded move along with the acting player's
// name.
func (b *Broadcaster) Move(gameID model.GameID, move model.Move, playerName string) {
	b.hub.Broadcast(gameID, model.NewMoveEvent(gameID, move, playerName))
}
