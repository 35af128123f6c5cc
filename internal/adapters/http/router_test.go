package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotefetch/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotefetch/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotefetch/internal/domain"
	"github.com/jsamuelsen/quotefetch/internal/fetch"
	"github.com/jsamuelsen/quotefetch/internal/platform/config"
	"github.com/jsamuelsen/quotefetch/internal/ports"
)

type staticFetcher struct {
	state fetch.State
}

func (f *staticFetcher) Snapshot() fetch.State     { return f.state }
func (f *staticFetcher) Loading() bool             { return f.state.Loading() }
func (f *staticFetcher) Refresh(_ context.Context) {}

func newTestEngine(t *testing.T, state fetch.State) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := ports.NewHealthRegistry()

	SetupRouter(engine, RouterConfig{
		Logger:        logger,
		AppConfig:     &config.AppConfig{Name: "quotefetch", Version: "test", Environment: "test"},
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now")),
		QuoteHandler:  handlers.NewQuoteHandler(&staticFetcher{state: state}),
		Timeout:       DefaultRequestTimeout,
	})

	return engine
}

func TestSetupRouter_QuoteRoute(t *testing.T) {
	engine := newTestEngine(t, fetch.State{
		Phase: fetch.PhaseReady,
		Quote: &domain.Quote{Text: "t", Author: "a"},
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/quote", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "ready", view.Status)
}

func TestSetupRouter_SetsRequestIDHeader(t *testing.T) {
	engine := newTestEngine(t, fetch.State{Phase: fetch.PhaseLoading})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/quote", nil))

	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderCorrelationID))
}

func TestSetupRouter_HealthRoutes(t *testing.T) {
	engine := newTestEngine(t, fetch.State{Phase: fetch.PhaseLoading})

	for _, path := range []string{"/-/live", "/-/ready", "/-/build", "/-/metrics"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestServer_New(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := New(&config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0,
		MaxRequestSize: 1 << 20,
	}, logger)

	require.NotNil(t, server.Engine())
	assert.Contains(t, server.Addr(), "127.0.0.1")
}
