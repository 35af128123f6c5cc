// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrUnavailable, etc.)
package ports

import (
	"context"

	"github.com/jsamuelsen/quotefetch/internal/domain"
)

// QuoteClient is the external collaborator that fetches a random quote.
// Adapters translate whichever backend shape they speak into domain.Quote.
//
// Implementations must:
//   - Respect context deadlines and cancellation
//   - Map any network or non-2xx outcome to domain.ErrUnavailable
//   - Never leak external DTO types
type QuoteClient interface {
	// Random fetches one random quote from the backing service.
	Random(ctx context.Context) (*domain.Quote, error)
}
