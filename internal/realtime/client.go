package realtime

import (
	"context"
	"log/slog"
	"time"

	"nhooyr.io/websocket"

	"github.com/mhollis/gamewire/internal/model"
)

const (
	// sendBufferSize is the number of frames that can be queued per client.
	sendBufferSize = 16

	// writeTimeout is the max time to wait for a single write to complete.
	writeTimeout = 5 * time.Second
)

// Client is one live socket admitted to a game, tagged with the
// authenticated user's identity. It exists only between a successful
// handshake and the socket closing; it is never persisted or reused.
type Client struct {
	conn     *websocket.Conn
	send     chan []byte
	userID   model.UserID
	username string
	gameID   model.GameID
}

// newClient wraps an accepted socket for a game.
func newClient(conn *websocket.Conn, gameID model.GameID, user *model.User) *Client {
	return &Client{
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
		userID:   user.ID,
		username: user.Username,
		gameID:   gameID,
	}
}

// writePump drains the client's send channel, writing each frame to the
// socket. It exits when ctx is cancelled or the send channel is closed.
func (c *Client) writePump(ctx context.Context, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := c.conn.Write(writeCtx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				logger.Debug("write failed",
					slog.String("user_id", string(c.userID)),
					slog.String("error", err.Error()))
				return
			}
		}
	}
}
