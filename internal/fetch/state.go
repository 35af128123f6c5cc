package fetch

import "github.com/jsamuelsen/quotefetch/internal/domain"

// Phase identifies which of the three mutually exclusive display states
// the fetcher is in.
type Phase string

const (
	// PhaseLoading means a fetch is in flight and no outcome has resolved yet.
	PhaseLoading Phase = "loading"
	// PhaseError means the last fetch failed.
	PhaseError Phase = "error"
	// PhaseReady means the last fetch succeeded and a quote is available.
	PhaseReady Phase = "ready"
)

// State is a snapshot of the fetcher at a point in time.
//
// It is modeled as a tagged variant rather than independent booleans so that
// contradictory combinations (loading with an error message, for example)
// cannot be represented. Err is non-empty only when Phase is PhaseError.
// Quote holds the most recent successful result and survives later failures,
// so callers can keep showing the previous quote alongside an error.
type State struct {
	Phase Phase
	Err   string
	Quote *domain.Quote
}

// Loading reports whether a fetch is currently in flight.
func (s State) Loading() bool {
	return s.Phase == PhaseLoading
}
