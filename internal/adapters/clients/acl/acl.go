// Package acl implements the Anti-Corruption Layer pattern for the quote
// providers. Each adapter translates one provider's wire format into the
// domain Quote, so the rest of the service never sees provider-specific
// shapes.
package acl

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen/quotefetch/internal/domain"
)

// mapStatusError converts a non-2xx provider response to a domain error.
func mapStatusError(serviceName string, status int) error {
	switch status {
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("HTTP %d", status))
	default:
		return domain.NewUnavailableError(serviceName, fmt.Sprintf("unexpected HTTP %d", status))
	}
}

// validateQuote rejects payloads that decoded but carry no usable quote.
func validateQuote(quote *domain.Quote) error {
	if quote.Text == "" {
		return domain.NewValidationError("text", "missing quote text")
	}

	if quote.Author == "" {
		return domain.NewValidationError("author", "missing quote author")
	}

	return nil
}
