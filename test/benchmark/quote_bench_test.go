package benchmark

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotefetch/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotefetch/internal/domain"
	"github.com/jsamuelsen/quotefetch/internal/fetch"
	"github.com/jsamuelsen/quotefetch/internal/ports"
)

func init() {
	// Release mode keeps Gin's debug logging out of the measurements.
	gin.SetMode(gin.ReleaseMode)
}

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// readyFetcher serves a fixed ready snapshot without any client behind it.
type readyFetcher struct {
	state fetch.State
}

func (f *readyFetcher) Snapshot() fetch.State { return f.state }
func (f *readyFetcher) Loading() bool         { return false }
func (f *readyFetcher) Refresh(_ context.Context) {
}

// BenchmarkGetQuoteHandler measures the snapshot path, the hot endpoint a
// polling UI would hit.
func BenchmarkGetQuoteHandler(b *testing.B) {
	handler := handlers.NewQuoteHandler(&readyFetcher{
		state: fetch.State{
			Phase: fetch.PhaseReady,
			Quote: &domain.Quote{Text: "quick brown fox", Author: "Anonymous"},
		},
	})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quote", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.GetQuote(c)
	}
}

// BenchmarkLivenessHandler measures the liveness probe path.
func BenchmarkLivenessHandler(b *testing.B) {
	registry := ports.NewHealthRegistry()
	handler := handlers.NewHealthHandler(registry, handlers.NewBuildInfo("1.0.0", "abc123", "2026-01-01T00:00:00Z"))
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Liveness(c)
	}
}
