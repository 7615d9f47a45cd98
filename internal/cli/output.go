package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case UserResult:
		o.printUser(v.User)
	case Game:
		o.printGame(v)
	case GameResult:
		o.printGame(v.Game)
	case GamesList:
		o.printGamesList(v)
	case PlayerResult:
		o.printPlayer(v.Player)
	case PlayersList:
		o.printPlayersList(v)
	case MoveResult:
		o.printMove(v.Move)
	case MovesList:
		o.printMovesList(v)
	case DeletedResult:
		o.printDeletedResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	APIKey    string    `json:"apiKey,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserResult wraps a user response
type UserResult struct {
	User User `json:"user"`
}

// Player response type
type Player struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joinedAt"`
}

// PlayerResult wraps a single player
type PlayerResult struct {
	Player Player `json:"player"`
}

// PlayersList response type
type PlayersList struct {
	GameID  string   `json:"gameId"`
	Count   int      `json:"count"`
	Players []Player `json:"players"`
}

// Move response type
type Move struct {
	ID        string         `json:"id"`
	PlayerID  string         `json:"playerId"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
}

// MoveResult wraps a single move
type MoveResult struct {
	Move Move `json:"move"`
}

// MovesList response type
type MovesList struct {
	GameID string `json:"gameId"`
	Count  int    `json:"count"`
	Moves  []Move `json:"moves"`
}

// Game response type
type Game struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	Status    string    `json:"status"`
	Players   []Player  `json:"players"`
	Moves     []Move    `json:"moves"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GameResult wraps a single game
type GameResult struct {
	Game Game `json:"game"`
}

// GamesList response type
type GamesList struct {
	Count int    `json:"count"`
	Games []Game `json:"games"`
}

// DeletedResult response type
type DeletedResult struct {
	Deleted bool `json:"deleted"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
	fmt.Printf("Created: %s\n", u.CreatedAt.Format(time.RFC3339))
	if u.APIKey != "" {
		fmt.Printf("API Key: %s\n", u.APIKey)
	}
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s (%s)\n", g.Name, g.ID)
	fmt.Printf("Owner: %s\n", g.OwnerID)
	fmt.Printf("Status: %s\n", g.Status)
	fmt.Printf("Created: %s\n", g.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Updated: %s\n", g.UpdatedAt.Format(time.RFC3339))
	fmt.Printf("Players (%d):\n", len(g.Players))
	for _, p := range g.Players {
		fmt.Printf("  - %s (%s)\n", p.Name, p.ID)
	}
	fmt.Printf("Moves: %d\n", len(g.Moves))
}

func (o *Output) printGamesList(l GamesList) {
	fmt.Printf("Games (%d):\n", l.Count)
	for _, g := range l.Games {
		fmt.Printf("  - %s (%s) - %s, %d players, %d moves\n",
			g.Name, g.ID, g.Status, len(g.Players), len(g.Moves))
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Joined: %s\n", p.JoinedAt.Format(time.RFC3339))
}

func (o *Output) printPlayersList(l PlayersList) {
	fmt.Printf("Players in game %s (%d):\n", l.GameID, l.Count)
	for _, p := range l.Players {
		fmt.Printf("  - %s (%s)\n", p.Name, p.ID)
	}
}

func (o *Output) printMove(m Move) {
	data, _ := json.Marshal(m.Data)
	fmt.Printf("Move: %s\n", m.ID)
	fmt.Printf("Player: %s\n", m.PlayerID)
	fmt.Printf("At: %s\n", m.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Data: %s\n", string(data))
}

func (o *Output) printMovesList(l MovesList) {
	fmt.Printf("Moves in game %s (%d):\n", l.GameID, l.Count)
	for _, m := range l.Moves {
		data, _ := json.Marshal(m.Data)
		fmt.Printf("  [%s] %s by %s: %s\n",
			m.CreatedAt.Format("15:04:05"), m.ID, m.PlayerID, string(data))
	}
}

func (o *Output) printDeletedResult(d DeletedResult) {
	if d.Deleted {
		fmt.Println("Deleted")
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
