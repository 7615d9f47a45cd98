package model

// Event type tags sent to realtime clients. Every frame is a JSON object
// with a "type" field carrying one of these values.
const (
	EventConnected          = "connected"
	EventMove               = "move"
	EventPlayerJoined       = "player-joined"
	EventPlayerRemoved      = "player-removed"
	EventPlayerDisconnected = "player-disconnected"
)

// ConnectedEvent is sent to a client immediately after a successful
// realtime handshake.
type ConnectedEvent struct {
	Type     string `json:"type"`
	GameID   GameID `json:"gameId"`
	UserID   UserID `json:"userId"`
	Username string `json:"username"`
}

// PlayerJoinedEvent is broadcast after a player is added to a game.
type PlayerJoinedEvent struct {
	Type   string `json:"type"`
	GameID GameID `json:"gameId"`
	Player Player `json:"player"`
}

// PlayerRemovedEvent is broadcast after a player is removed from a game.
type PlayerRemovedEvent struct {
	Type     string   `json:"type"`
	GameID   GameID   `json:"gameId"`
	PlayerID PlayerID `json:"playerId"`
}

// MoveEvent is broadcast after a move is recorded. PlayerName is included
// so clients can render the move without re-fetching the roster.
type MoveEvent struct {
	Type       string `json:"type"`
	GameID     GameID `json:"gameId"`
	Move       Move   `json:"move"`
	PlayerName string `json:"playerName"`
}

// PlayerDisconnectedEvent is broadcast to a game's remaining connections
// when one of its sockets closes.
type PlayerDisconnectedEvent struct {
	Type     string `json:"type"`
	GameID   GameID `json:"gameId"`
	UserID   UserID `json:"userId"`
	Username string `json:"username"`
}

// NewConnectedEvent builds a connected event for a freshly admitted socket.
func NewConnectedEvent(gameID GameID, userID UserID, username string) ConnectedEvent {
	return ConnectedEvent{Type: EventConnected, GameID: gameID, UserID: userID, Username: username}
}

// NewPlayerJoinedEvent builds a player-joined event.
func NewPlayerJoinedEvent(gameID GameID, player Player) PlayerJoinedEvent {
	return PlayerJoinedEvent{Type: EventPlayerJoined, GameID: gameID, Player: player}
}

// NewPlayerRemovedEvent builds a player-removed event.
func NewPlayerRemovedEvent(gameID GameID, playerID PlayerID) PlayerRemovedEvent {
	return PlayerRemovedEvent{Type: EventPlayerRemoved, GameID: gameID, PlayerID: playerID}
}

// NewMoveEvent builds a move event.
func NewMoveEvent(gameID GameID, move Move, playerName string) MoveEvent {
	return MoveEvent{Type: EventMove, GameID: gameID, Move: move, PlayerName: playerName}
}

// NewPlayerDisconnectedEvent builds a player-disconnected event.
func NewPlayerDisconnectedEvent(gameID GameID, userID UserID, username string) PlayerDisconnectedEvent {
	return PlayerDisconnectedEvent{Type: EventPlayerDisconnected, GameID: gameID, UserID: userID, Username: username}
}
