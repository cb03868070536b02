package projects

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/user/projtrack-go/auth"
	"github.com/user/projtrack-go/config"
)

// userRepo is a minimal in-memory auth.Repository so the full HTTP stack,
// including registration and the token gateway, can run against fakes.
type userRepo struct {
	users map[string]*auth.User
}

func (m *userRepo) Create(ctx context.Context, user *auth.User) (*auth.User, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return nil, auth.ErrDuplicateEmail
		}
	}
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	stored := *user
	m.users[user.ID.Hex()] = &stored
	return user, nil
}

func (m *userRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, auth.ErrNotFound
}

func (m *userRepo) FindByID(ctx context.Context, id string) (*auth.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *userRepo) SetResetToken(ctx context.Context, userID, token string, expires time.Time) error {
	return auth.ErrNotFound
}

func (m *userRepo) ResetPassword(ctx context.Context, token string, now time.Time, hashedPassword string) error {
	return auth.ErrNotFound
}

type noopMailer struct{}

func (noopMailer) Send(ctx context.Context, to, subject, body string) error { return nil }

// newAPIRouter mirrors the route layout from main.go: public auth routes,
// guarded project routes, and the protected probe.
func newAPIRouter() http.Handler {
	authCfg := config.AuthConfig{JWTSecret: "test-secret", TokenDuration: 168 * time.Hour}

	authService := auth.NewAuthService(&userRepo{users: map[string]*auth.User{}}, noopMailer{}, authCfg)
	authHandlers := auth.NewHandlers(authService)

	projectHandlers := NewProjectHandlers(NewProjectService(&memoryRepo{}))

	r := chi.NewRouter()
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
	})
	r.Route("/api/projects", func(r chi.Router) {
		r.Use(auth.JWTMiddleware(&authCfg))
		projectHandlers.RegisterRoutes(r)
	})
	r.Group(func(r chi.Router) {
		r.Use(auth.JWTMiddleware(&authCfg))
		r.Get("/api/protected", func(w http.ResponseWriter, r *http.Request) {
			auth.WriteJSON(w, http.StatusOK, auth.MessageResponse{Message: "protected route accessed successfully"})
		})
	})
	return r
}

func doJSON(t *testing.T, handler http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, router http.Handler, name, email string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "",
		fmt.Sprintf(`{"name":%q,"email":%q,"password":"pw123"}`, name, email))
	require.Equal(t, http.StatusOK, rec.Code)
	var resp auth.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestProjectLifecycleScenario(t *testing.T) {
	router := newAPIRouter()
	token := registerUser(t, router, "Ana", "ana@x.com")

	// Create returns 201 with the defaulted status.
	rec := doJSON(t, router, http.MethodPost, "/api/projects/", token,
		`{"title":"T","startDate":"2024-01-01","endDate":"2024-02-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, StatusInProgress, created.Status)
	assert.Equal(t, "T", created.Title)

	// Delete it, then the list is an empty array.
	rec = doJSON(t, router, http.MethodDelete, "/api/projects/"+created.ID.Hex(), token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message"`)

	rec = doJSON(t, router, http.MethodGet, "/api/projects/", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestProjectRoutes_RequireToken(t *testing.T) {
	router := newAPIRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/projects/", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/projects/", "",
		`{"title":"T","startDate":"2024-01-01","endDate":"2024-02-01"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProjectIsolationBetweenUsers(t *testing.T) {
	router := newAPIRouter()
	tokenA := registerUser(t, router, "Ana", "ana@x.com")
	tokenB := registerUser(t, router, "Bia", "bia@x.com")

	rec := doJSON(t, router, http.MethodPost, "/api/projects/", tokenA,
		`{"title":"Ana's","startDate":"2024-01-01","endDate":"2024-02-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// B cannot see, update, or delete A's project; every path is a 404.
	rec = doJSON(t, router, http.MethodGet, "/api/projects/", tokenB, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = doJSON(t, router, http.MethodPut, "/api/projects/"+created.ID.Hex(), tokenB,
		`{"title":"stolen"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/projects/"+created.ID.Hex(), tokenB, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A's own update still succeeds afterwards.
	rec = doJSON(t, router, http.MethodPut, "/api/projects/"+created.ID.Hex(), tokenA,
		`{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, StatusCompleted, updated.Status)
}

func TestUpdate_MalformedID(t *testing.T) {
	router := newAPIRouter()
	token := registerUser(t, router, "Ana", "ana@x.com")

	// A malformed id behaves exactly like a missing project.
	rec := doJSON(t, router, http.MethodPut, "/api/projects/not-a-hex-id", token, `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProtectedProbe(t *testing.T) {
	router := newAPIRouter()
	token := registerUser(t, router, "Ana", "ana@x.com")

	rec := doJSON(t, router, http.MethodGet, "/api/protected", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/protected", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "protected route accessed successfully")
}
