package handler_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/comite-ethique/backend/internal/config"
	"github.com/comite-ethique/backend/internal/database"
	"github.com/comite-ethique/backend/internal/handler"
	"github.com/comite-ethique/backend/internal/middleware"
	"github.com/comite-ethique/backend/internal/repository"
	"github.com/comite-ethique/backend/internal/router"
)

// testServer is the fully wired application over an in-memory database,
// exercised through echo's ServeHTTP exactly like production traffic.
type testServer struct {
	e  *echo.Echo
	db *sql.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := config.Config{
		Env:           "development",
		Port:          "0",
		DBPath:        ":memory:",
		SessionSecret: "test-secret",
		BcryptCost:    bcrypt.MinCost,
	}

	db, err := database.Open(cfg.DBPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Bootstrap(context.Background(), db, cfg.BcryptCost))

	admins := repository.NewAdminRepo(db)
	complaints := repository.NewComplaintRepo(db)
	messages := repository.NewMessageRepo(db)
	suggestions := repository.NewSuggestionRepo(db)
	protocols := repository.NewProtocolRepo(db)
	content := repository.NewContentRepo(db)
	sessions := repository.NewSessionRepo(db)

	auth := handler.NewAuthHandler(cfg, admins, sessions)
	pub := handler.NewPublicHandler(complaints, messages, suggestions, protocols, content)
	adm := handler.NewAdminHandler(cfg, admins, complaints, messages, suggestions, protocols, content)

	e := echo.New()
	limiter := middleware.NewLoginRateLimiter(10, 15*time.Minute)
	guard := middleware.RequireAdmin(cfg.SessionSecret, sessions)
	router.Register(e, auth, pub, adm, limiter, guard)

	return &testServer{e: e, db: db}
}

// request performs one JSON request.  A non-empty cookie is forwarded as
// the session cookie header.
func (s *testServer) request(method, path, body, cookie string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

// login authenticates as the seeded default admin and returns the session
// cookie to replay on admin routes.
func (s *testServer) login(t *testing.T) string {
	t.Helper()
	rec := s.request(http.MethodPost, "/api/login",
		`{"username":"`+database.DefaultAdminUsername+`","password":"`+database.DefaultAdminPassword+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "login must set the session cookie")
	return cookies[0].Name + "=" + cookies[0].Value
}

// decode unmarshals a JSON response body into a map.
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}
