package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhollis/gamewire/internal/api"
	"github.com/mhollis/gamewire/internal/api/response"
	"github.com/mhollis/gamewire/internal/factory"
	"github.com/mhollis/gamewire/internal/testutil"
)

// testServer wraps the router with request helpers
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	t.Cleanup(app.Hub.Shutdown)

	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		AuthService:    app.AuthService,
		GameController: app.GameController,
		Hub:            app.Hub,
		Storage:        app.Storage,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// register creates a user and returns its API key
func (ts *testServer) register(t *testing.T, username string) response.User {
	t.Helper()

	rr := ts.request(http.MethodPost, "/auth/register", map[string]string{"username": username}, "")
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())

	var resp response.RegisterResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.User
}

// createGame creates a game for the given token and returns it
func (ts *testServer) createGame(t *testing.T, token, name string) response.Game {
	t.Helper()

	rr := ts.request(http.MethodPost, "/games", map[string]string{"name": name}, token)
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())

	var resp response.GameResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Game
}

// addPlayer adds a player to a game's roster
func (ts *testServer) addPlayer(t *testing.T, token, gameID, name string) response.Player {
	t.Helper()

	rr := ts.request(http.MethodPost, "/games/"+gameID+"/players", map[string]string{"name": name}, token)
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())

	var resp response.PlayerResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Player
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

// Health

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

// Registration and identity

func TestRegister(t *testing.T) {
	ts := newTestServer(t)

	user := ts.register(t, "alice")
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.APIKey)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice")

	rr := ts.request(http.MethodPost, "/auth/register", map[string]string{"username": "alice"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "USERNAME_EXISTS", errorCode(t, rr))
}

func TestRegisterBlankUsername(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/auth/register", map[string]string{"username": "   "}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegisterInvalidBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMe(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")

	rr := ts.request(http.MethodGet, "/auth/me", nil, user.APIKey)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.MeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)
}

func TestMeRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodGet, "/auth/me", nil, "gw_bogus")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// Game CRUD

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")

	game := ts.createGame(t, user.APIKey, "Friday Chess")
	assert.NotEmpty(t, game.ID)
	assert.Equal(t, "Friday Chess", game.Name)
	assert.Equal(t, user.ID, game.OwnerID)
	assert.Equal(t, "active", game.Status)
	assert.Empty(t, game.Players)
	assert.Empty(t, game.Moves)
}

func TestCreateGameRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/games", map[string]string{"name": "Nope"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListGames(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.register(t, "alice")
	bob := ts.register(t, "bob")

	ts.createGame(t, alice.APIKey, "First")
	ts.createGame(t, alice.APIKey, "Second")
	ts.createGame(t, bob.APIKey, "Bobs")

	rr := ts.request(http.MethodGet, "/games", nil, alice.APIKey)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.GamesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Games, 2)
	assert.Equal(t, "First", resp.Games[0].Name)
	assert.Equal(t, "Second", resp.Games[1].Name)
}

func TestGetGame(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")
	game := ts.createGame(t, user.APIKey, "Friday Chess")

	rr := ts.request(http.MethodGet, "/games/"+game.ID, nil, user.APIKey)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.GameResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, game.ID, resp.Game.ID)
}

func TestGetGameNotFound(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")

	rr := ts.request(http.MethodGet, "/games/nonexistent", nil, user.APIKey)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "GAME_NOT_FOUND", errorCode(t, rr))
}

func TestGetGameForbiddenForNonOwner(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.register(t, "alice")
	bob := ts.register(t, "bob")
	game := ts.createGame(t, alice.APIKey, "Private")

	rr := ts.request(http.MethodGet, "/games/"+game.ID, nil, bob.APIKey)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestUpdateGame(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")
	game := ts.createGame(t, user.APIKey, "Friday Chess")

	body := map[string]string{"name": "Saturday Chess", "status": "finished"}
	rr := ts.request(http.MethodPut, "/games/"+game.ID, body, user.APIKey)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.GameResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Saturday Chess", resp.Game.Name)
	assert.Equal(t, "finished", resp.Game.Status)
}

func TestUpdateGamePartial(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")
	game := ts.createGame(t, user.APIKey, "Friday Chess")

	rr := ts.request(http.MethodPut, "/games/"+game.ID, map[string]string{"status": "paused"}, user.APIKey)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.GameResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Friday Chess", resp.Game.Name)
	assert.Equal(t, "paused", resp.Game.Status)
}

func TestUpdateGameForbiddenForNonOwner(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.register(t, "alice")
	bob := ts.register(t, "bob")
	game := ts.createGame(t, alice.APIKey, "Private")

	rr := ts.request(http.MethodPut, "/games/"+game.ID, map[string]string{"name": "Hijacked"}, bob.APIKey)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestDeleteGame(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")
	game := ts.createGame(t, user.APIKey, "Doomed")

	rr := ts.request(http.MethodDelete, "/games/"+game.ID, nil, user.APIKey)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"deleted":true`)

	rr = ts.request(http.MethodGet, "/games/"+game.ID, nil, user.APIKey)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// Roster

func TestAddPlayer(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")
	game := ts.createGame(t, user.APIKey, "Friday Chess")

	player := ts.addPlayer(t, user.APIKey, game.ID, "Bob")
	assert.NotEmpty(t, player.ID)
	assert.Equal(t, "Bob", player.Name)
}

func TestAddPlayerForbiddenForNonOwner(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.register(t, "alice")
	bob := ts.register(t, "bob")
	game := ts.createGame(t, alice.APIKey, "Private")

	rr := ts.request(http.MethodPost, "/games/"+game.ID+"/players", map[string]string{"name": "Eve"}, bob.APIKey)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestListPlayers(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")
	game := ts.createGame(t, user.APIKey, "Friday Chess")
	ts.addPlayer(t, user.APIKey, game.ID, "Bob")
	ts.addPlayer(t, user.APIKey, game.ID, "Carol")

	rr := ts.request(http.MethodGet, "/games/"+game.ID+"/players", nil, user.APIKey)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.PlayersResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, game.ID, resp.GameID)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Players, 2)
	assert.Equal(t, "Bob", resp.Players[0].Name)
	assert.Equal(t, "Carol", resp.Players[1].Name)
}

func TestRemovePlayer(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")
	game := ts.createGame(t, user.APIKey, "Friday Chess")
	player := ts.addPlayer(t, user.APIKey, game.ID, "Bob")

	rr := ts.request(http.MethodDelete, "/games/"+game.ID+"/players/"+player.ID, nil, user.APIKey)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/games/"+game.ID+"/players", nil, user.APIKey)
	var resp response.PlayersResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
}

func TestRemovePlayerNotFound(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")
	game := ts.createGame(t, user.APIKey, "Friday Chess")

	rr := ts.request(http.MethodDelete, "/games/"+game.ID+"/players/nonexistent", nil, user.APIKey)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "PLAYER_NOT_FOUND", errorCode(t, rr))
}

// Moves

func TestAddMove(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")
	game := ts.createGame(t, user.APIKey, "Friday Chess")
	player := ts.addPlayer(t, user.APIKey, game.ID, "Bob")

	body := map[string]any{
		"playerId": player.ID,
		"data":     map[string]any{"from": "e2", "to": "e4"},
	}
	rr := ts.request(http.MethodPost, "/games/"+game.ID+"/moves", body, user.APIKey)
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())

	var resp response.MoveResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Move.ID)
	assert.Equal(t, player.ID, resp.Move.PlayerID)
	assert.Equal(t, "e4", resp.Move.Data["to"])
}

func TestAddMoveUnknownPlayer(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")
	game := ts.createGame(t, user.APIKey, "Friday Chess")

	body := map[string]any{
		"playerId": "nonexistent",
		"data":     map[string]any{"pass": true},
	}
	rr := ts.request(http.MethodPost, "/games/"+game.ID+"/moves", body, user.APIKey)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "PLAYER_NOT_FOUND", errorCode(t, rr))
}

func TestAddMoveForbiddenForStranger(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.register(t, "alice")
	eve := ts.register(t, "eve")
	game := ts.createGame(t, alice.APIKey, "Private")
	player := ts.addPlayer(t, alice.APIKey, game.ID, "Bob")

	body := map[string]any{
		"playerId": player.ID,
		"data":     map[string]any{"pass": true},
	}
	rr := ts.request(http.MethodPost, "/games/"+game.ID+"/moves", body, eve.APIKey)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestListMoves(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")
	game := ts.createGame(t, user.APIKey, "Friday Chess")
	player := ts.addPlayer(t, user.APIKey, game.ID, "Bob")

	for _, mv := range []map[string]any{{"n": 1}, {"n": 2}} {
		body := map[string]any{"playerId": player.ID, "data": mv}
		rr := ts.request(http.MethodPost, "/games/"+game.ID+"/moves", body, user.APIKey)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := ts.request(http.MethodGet, "/games/"+game.ID+"/moves", nil, user.APIKey)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.MovesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, game.ID, resp.GameID)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Moves, 2)
	assert.Equal(t, float64(1), resp.Moves[0].Data["n"])
	assert.Equal(t, float64(2), resp.Moves[1].Data["n"])
}

func TestGetMove(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")
	game := ts.createGame(t, user.APIKey, "Friday Chess")
	player := ts.addPlayer(t, user.APIKey, game.ID, "Bob")

	body := map[string]any{"playerId": player.ID, "data": map[string]any{"pass": true}}
	rr := ts.request(http.MethodPost, "/games/"+game.ID+"/moves", body, user.APIKey)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created response.MoveResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = ts.request(http.MethodGet, "/games/"+game.ID+"/moves/"+created.Move.ID, nil, user.APIKey)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.MoveResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, created.Move.ID, resp.Move.ID)
}

func TestGetMoveNotFound(t *testing.T) {
	ts := newTestServer(t)
	user := ts.register(t, "alice")
	game := ts.createGame(t, user.APIKey, "Friday Chess")

	rr := ts.request(http.MethodGet, "/games/"+game.ID+"/moves/nonexistent", nil, user.APIKey)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "MOVE_NOT_FOUND", errorCode(t, rr))
}
