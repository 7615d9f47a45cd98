package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"nhooyr.io/websocket"
)

func newWatchCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "watch <game-id>",
		Short: "Stream websocket events from a game",
		Long: `Connect to the game's websocket endpoint and stream events in real-time.

Events include:
  - connected: A user's websocket connection was accepted
  - player-joined: A player was added to the roster
  - player-removed: A player was removed from the roster
  - move: A move was recorded
  - player-disconnected: A user's websocket connection closed

Press Ctrl+C to disconnect.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchGame(args[0], jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output events as JSON lines")

	return cmd
}

func watchGame(gameID string, jsonOutput bool) error {
	wsURL, err := websocketURL(cfg.ServerURL, gameID, cfg.Token)
	if err != nil {
		return err
	}

	// Set up cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()

	if !jsonOutput {
		fmt.Printf("Connected to game %s\n", gameID)
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			// Context cancellation is expected
			if ctx.Err() != nil {
				if !jsonOutput {
					fmt.Println("\nDisconnected")
				}
				return nil
			}
			var closeErr websocket.CloseError
			if errors.As(err, &closeErr) {
				if closeErr.Code == websocket.StatusNormalClosure || closeErr.Code == websocket.StatusGoingAway {
					if !jsonOutput {
						fmt.Println("Disconnected")
					}
					return nil
				}
				return fmt.Errorf("connection closed: %s (%d)", closeErr.Reason, closeErr.Code)
			}
			return fmt.Errorf("stream error: %w", err)
		}

		printFrame(data, jsonOutput)
	}
}

// websocketURL derives the ws endpoint from the configured server URL.
func websocketURL(serverURL, gameID, token string) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(serverURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid server URL: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}

	u.Path = u.Path + "/ws"
	q := u.Query()
	q.Set("token", token)
	q.Set("gameId", gameID)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func printFrame(data []byte, jsonOutput bool) {
	if jsonOutput {
		fmt.Println(string(data))
		return
	}

	var evt struct {
		Type string `json:"type"`
	}
	eventType := "unknown"
	if err := json.Unmarshal(data, &evt); err == nil && evt.Type != "" {
		eventType = evt.Type
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	// Truncate payload if it's too long for display
	display := string(data)
	if len(display) > 120 {
		display = display[:120] + "..."
	}
	fmt.Printf("[%s] %s: %s\n", timestamp, eventType, display)
}
