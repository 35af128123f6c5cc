// Package fetch contains the quote fetch state machine.
//
// A Fetcher owns a single tri-state view of the quote provider: loading,
// error, or ready. Refresh drives the machine through one fetch cycle; the
// snapshot is what the HTTP layer renders.
package fetch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jsamuelsen/quotefetch/internal/domain"
	"github.com/jsamuelsen/quotefetch/internal/ports"
)

// ErrMessage is the single user-facing message for any failed fetch.
// Transport errors, bad status codes and malformed payloads all collapse to
// this string; the underlying cause goes to the log only.
const ErrMessage = "Could not load a quote right now. Please try again."

// Fetcher fetches quotes through a QuoteClient port and tracks the outcome
// as a State snapshot.
//
// Fetcher does not guard against concurrent Refresh calls; callers that need
// a "disabled while loading" trigger enforce it at their own boundary. When
// refreshes do overlap, each mutation is serialized by the internal mutex and
// the last fetch to resolve determines the final state.
type Fetcher struct {
	client ports.QuoteClient
	logger *slog.Logger

	mu    sync.Mutex
	state State
}

// Config contains dependencies for constructing a Fetcher.
type Config struct {
	Client ports.QuoteClient
	Logger *slog.Logger
}

// New creates a Fetcher in the loading phase, matching a component that
// mounts with its initial fetch already pending.
func New(cfg Config) *Fetcher {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Fetcher{
		client: cfg.Client,
		logger: logger,
		state:  State{Phase: PhaseLoading},
	}
}

// Refresh runs one fetch cycle: enter loading, issue a single request, then
// settle into ready or error. The previous quote is kept across the loading
// phase and is not discarded when the fetch fails.
//
// Refresh never returns an error to its caller; a failed fetch is an error
// *state*, not a failed operation.
func (f *Fetcher) Refresh(ctx context.Context) {
	f.mu.Lock()
	f.state = State{Phase: PhaseLoading, Quote: f.state.Quote}
	f.mu.Unlock()

	f.logger.InfoContext(ctx, "fetching quote")

	quote, err := f.client.Random(ctx)
	if err != nil {
		f.logger.ErrorContext(ctx, "quote fetch failed",
			slog.Any("error", err),
		)

		f.mu.Lock()
		f.state = State{Phase: PhaseError, Err: ErrMessage, Quote: f.state.Quote}
		f.mu.Unlock()
		return
	}

	f.logger.InfoContext(ctx, "fetched quote",
		slog.String("author", quote.Author),
	)

	f.mu.Lock()
	f.state = State{Phase: PhaseReady, Quote: quote}
	f.mu.Unlock()
}

// Snapshot returns the current state. The contained quote pointer is shared;
// domain.Quote is immutable so this is safe.
func (f *Fetcher) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Loading reports whether a fetch is currently in flight. It is the guard
// the trigger boundary consults before starting another refresh.
func (f *Fetcher) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Loading()
}

// Quote is a convenience accessor for the last successful quote, which may
// be nil before the first successful fetch.
func (f *Fetcher) Quote() *domain.Quote {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Quote
}
