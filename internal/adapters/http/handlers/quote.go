package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotefetch/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotefetch/internal/domain"
	"github.com/jsamuelsen/quotefetch/internal/fetch"
	"github.com/jsamuelsen/quotefetch/internal/platform/logging"
)

// QuoteFetcher is the slice of the fetch state machine the handler needs.
type QuoteFetcher interface {
	Snapshot() fetch.State
	Loading() bool
	Refresh(ctx context.Context)
}

// QuoteHandler exposes the quote view and refresh trigger over HTTP.
type QuoteHandler struct {
	fetcher QuoteFetcher
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(fetcher QuoteFetcher) *QuoteHandler {
	return &QuoteHandler{
		fetcher: fetcher,
	}
}

// GetQuote handles GET /api/v1/quote
// Returns the current tri-state view: loading, error, or ready. This is a
// snapshot of display state, not an RPC result, so it is always 200.
//
// @Summary Get the current quote view
// @Description Returns the fetcher state: loading, error, or ready with a quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteView
// @Router /api/v1/quote [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewQuoteView(h.fetcher.Snapshot()))
}

// RefreshQuote handles POST /api/v1/quote/refresh
// Starts a new fetch cycle. While a fetch is already in flight the trigger is
// rejected with 409, the API equivalent of a disabled button.
//
// @Summary Trigger a quote refresh
// @Description Starts a new fetch unless one is already in flight
// @Tags quotes
// @Produce json
// @Success 202 {object} dto.QuoteView
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/quote/refresh [post]
func (h *QuoteHandler) RefreshQuote(c *gin.Context) {
	if h.fetcher.Loading() {
		dto.HandleError(c, domain.NewConflictError("quote", "a fetch is already in flight"))
		return
	}

	// Detach from the request context so the fetch outlives this response;
	// the 202 returns immediately while the fetch settles in the background.
	ctx := context.WithoutCancel(c.Request.Context())

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.FromContext(ctx).Error("refresh panic", slog.Any("error", r))
			}
		}()

		h.fetcher.Refresh(ctx)
	}()

	c.JSON(http.StatusAccepted, dto.NewQuoteView(fetch.State{Phase: fetch.PhaseLoading, Quote: h.fetcher.Snapshot().Quote}))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quote := rg.Group("/quote")
	quote.GET("", h.GetQuote)
	quote.POST("/refresh", h.RefreshQuote)
}
