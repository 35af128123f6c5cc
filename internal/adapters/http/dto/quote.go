package dto

import (
	"github.com/jsamuelsen/quotefetch/internal/fetch"
)

// Status values for the quote view.
const (
	StatusLoading = "loading"
	StatusError   = "error"
	StatusReady   = "ready"
)

// QuoteView is the rendering contract for the quote state.
// Exactly one of the tri-state statuses is reported; quote is present
// whenever a fetch has ever succeeded, even alongside an error status.
type QuoteView struct {
	Status string     `json:"status"`
	Quote  *QuoteBody `json:"quote,omitempty"`
	Error  string     `json:"error,omitempty"`
}

// QuoteBody is the normalized quote payload.
type QuoteBody struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// NewQuoteView converts a fetcher state snapshot into the view model.
func NewQuoteView(state fetch.State) QuoteView {
	view := QuoteView{}

	switch state.Phase {
	case fetch.PhaseLoading:
		view.Status = StatusLoading
	case fetch.PhaseError:
		view.Status = StatusError
		view.Error = state.Err
	case fetch.PhaseReady:
		view.Status = StatusReady
	}

	if state.Quote != nil {
		view.Quote = &QuoteBody{
			Text:   state.Quote.Text,
			Author: state.Quote.Author,
		}
	}

	return view
}
