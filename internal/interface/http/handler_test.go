package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/mywallet-api/internal/application"
	"github.com/oksasatya/mywallet-api/internal/domain/entity"
	"github.com/oksasatya/mywallet-api/internal/domain/repository/repositorytest"
	handlers "github.com/oksasatya/mywallet-api/internal/interface/http"
	"github.com/oksasatya/mywallet-api/internal/router"
	"github.com/oksasatya/mywallet-api/internal/router/modules"
	"github.com/oksasatya/mywallet-api/pkg/helpers"
	"github.com/oksasatya/mywallet-api/pkg/validation"
)

type envelope struct {
	Status  int               `json:"status"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   map[string]string `json:"error"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *repositorytest.UserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	users := repositorytest.NewUserRepo()
	sessions := repositorytest.NewSessionRepo()
	movements := repositorytest.NewMovementRepo()
	logger := helpers.NewLogger("test", "test")
	svc := application.NewService(users, sessions, movements, logger)

	r := gin.New()
	reg := router.NewRegistry(r)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(svc, logger, nil, nil), svc))
	reg.Add(modules.NewMovementModule(handlers.NewMovementHandler(svc, logger), svc))
	reg.RegisterAll()
	return r, users
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func register(t *testing.T, r *gin.Engine, name, email, password string) {
	w, _ := do(t, r, http.MethodPost, "/register", "", gin.H{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	w, env := do(t, r, http.MethodPost, "/login", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestEndToEndScenario(t *testing.T) {
	r, _ := newTestRouter(t)

	register(t, r, "Ana", "a@x.com", "p1")
	token := login(t, r, "a@x.com", "p1")

	// profile without password
	w, env := do(t, r, http.MethodGet, "/home", "Bearer "+token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "Ana", profile["name"])
	assert.Equal(t, "a@x.com", profile["email"])
	assert.NotContains(t, profile, "password")
	assert.NotContains(t, profile, "password_hash")
	ownerID := profile["id"].(string)

	// record a movement
	w, _ = do(t, r, http.MethodPost, "/newmovement", "Bearer "+token, gin.H{
		"date": "2024-01-01", "description": "coffee", "value": -5, "type": "expense",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// list it back
	w, env = do(t, r, http.MethodGet, "/movements", "Bearer "+token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []entity.Movement
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "coffee", list[0].Description)
	assert.Equal(t, -5.0, list[0].Value)
	assert.Equal(t, "expense", list[0].Type)
	assert.Equal(t, "2024-01-01", list[0].Date)
	assert.Equal(t, ownerID, list[0].UserID)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := do(t, r, http.MethodPost, "/register", "", gin.H{
		"name": "An", "email": "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "must be at least 3 characters long", env.Error["name"])
	assert.Equal(t, "must be a valid email", env.Error["email"])
	assert.Equal(t, "is required", env.Error["password"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestRouter(t)
	register(t, r, "Ana", "a@x.com", "p1")

	w, _ := do(t, r, http.MethodPost, "/register", "", gin.H{
		"name": "Other", "email": "a@x.com", "password": "p2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	r, _ := newTestRouter(t)
	register(t, r, "Ana", "a@x.com", "p1")

	wWrong, envWrong := do(t, r, http.MethodPost, "/login", "", gin.H{"email": "a@x.com", "password": "nope"})
	wGhost, envGhost := do(t, r, http.MethodPost, "/login", "", gin.H{"email": "ghost@x.com", "password": "p1"})

	assert.Equal(t, http.StatusUnauthorized, wWrong.Code)
	assert.Equal(t, http.StatusUnauthorized, wGhost.Code)
	assert.Equal(t, envWrong.Message, envGhost.Message)
}

func TestBareSchemeWordRejectedEverywhere(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodDelete, "/logout", nil},
		{http.MethodGet, "/home", nil},
		{http.MethodPost, "/newmovement", gin.H{"date": "2024-01-01", "description": "x", "value": 1, "type": "income"}},
		{http.MethodGet, "/movements", nil},
	}
	for _, tc := range cases {
		w, _ := do(t, r, tc.method, tc.path, "Bearer", tc.body)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s with bare scheme word", tc.method, tc.path)

		w, _ = do(t, r, tc.method, tc.path, "", tc.body)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s without header", tc.method, tc.path)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	r, _ := newTestRouter(t)
	register(t, r, "Ana", "a@x.com", "p1")
	token := login(t, r, "a@x.com", "p1")

	w, _ := do(t, r, http.MethodDelete, "/logout", "Bearer "+token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodDelete, "/logout", "Bearer "+token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// the token no longer authenticates
	w, _ = do(t, r, http.MethodGet, "/home", "Bearer "+token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNewMovementCheckOrdering(t *testing.T) {
	r, _ := newTestRouter(t)

	// no header at all: 401 before the payload is even looked at
	w, _ := do(t, r, http.MethodPost, "/newmovement", "", gin.H{"bogus": true})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// well-formed header with an unknown token, broken payload: schema wins
	w, env := do(t, r, http.MethodPost, "/newmovement", "Bearer bogus-token", gin.H{"date": "2024-01-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "is required", env.Error["description"])
	assert.Equal(t, "is required", env.Error["value"])
	assert.Equal(t, "is required", env.Error["type"])

	// well-formed header, valid payload, unknown token: identity check last
	w, _ = do(t, r, http.MethodPost, "/newmovement", "Bearer bogus-token", gin.H{
		"date": "2024-01-01", "description": "x", "value": 1, "type": "income",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMovementZeroValueAccepted(t *testing.T) {
	r, _ := newTestRouter(t)
	register(t, r, "Ana", "a@x.com", "p1")
	token := login(t, r, "a@x.com", "p1")

	w, _ := do(t, r, http.MethodPost, "/newmovement", "Bearer "+token, gin.H{
		"date": "2024-01-01", "description": "adjustment", "value": 0, "type": "correction",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestMovementsScopedToOwner(t *testing.T) {
	r, _ := newTestRouter(t)
	register(t, r, "Ana", "a@x.com", "p1")
	register(t, r, "Bob", "b@x.com", "p2")
	anaToken := login(t, r, "a@x.com", "p1")
	bobToken := login(t, r, "b@x.com", "p2")

	w, _ := do(t, r, http.MethodPost, "/newmovement", "Bearer "+anaToken, gin.H{
		"date": "2024-01-01", "description": "coffee", "value": -5, "type": "expense",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := do(t, r, http.MethodGet, "/movements", "Bearer "+bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []entity.Movement
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Empty(t, list)
}

func TestHomeRejectsOrphanedSession(t *testing.T) {
	r, users := newTestRouter(t)
	register(t, r, "Ana", "a@x.com", "p1")
	token := login(t, r, "a@x.com", "p1")

	w, env := do(t, r, http.MethodGet, "/home", "Bearer "+token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	users.Delete(profile["id"].(string))

	w, _ = do(t, r, http.MethodGet, "/home", "Bearer "+token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
