package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"notepad-be/internal/bootstrap"
	"notepad-be/internal/config"
	"notepad-be/internal/controller"
	"notepad-be/internal/pkg/logger"
	"notepad-be/internal/pkg/metrics"
	"notepad-be/internal/pkg/serverutils"
	"notepad-be/internal/repository/testdb"
	"notepad-be/internal/repository/unitofwork"
	"notepad-be/internal/service"
	"notepad-be/pkg/sanitizer"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, withMetrics bool) *Server {
	t.Helper()

	auth := serverutils.NewJwtAuth("secret")
	noteService := service.NewNoteService(
		unitofwork.NewRepositoryFactory(testdb.New(t)),
		nil,
		nil,
		sanitizer.NewNoteContentSanitizer(),
		logger.NewNopLogger(),
	)

	c := &bootstrap.Container{
		NoteController:       controller.NewNoteController(noteService, auth),
		CompletionController: controller.NewCompletionController(nil, auth),
		Logger:               logger.NewNopLogger(),
	}
	if withMetrics {
		m, err := metrics.New("test")
		require.NoError(t, err)
		c.Metrics = m
	}

	cfg := &config.Config{App: config.AppConfig{CorsAllowedOrigins: "http://localhost:5173"}}
	return New(cfg, c)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, false)

	res, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestMetricsRouteFollowsConfig(t *testing.T) {
	res, err := newTestServer(t, false).GetApp().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, err = newTestServer(t, true).GetApp().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestRoutesMountedUnderAPI(t *testing.T) {
	srv := newTestServer(t, false)

	res, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/note/v1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, err = srv.GetApp().Test(httptest.NewRequest(http.MethodPost, "/api/callable/generateAIResponse", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestPanicIsRenderedAsGenericInternalError(t *testing.T) {
	srv := newTestServer(t, false)
	srv.GetApp().Get("/boom", func(ctx *fiber.Ctx) error {
		panic("pq: password authentication failed for user notepad")
	})

	res, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "application/json")

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Internal server error", out["message"])
	assert.Equal(t, "internal", out["error_kind"])
	assert.NotEmpty(t, out["correlation_id"])
}
