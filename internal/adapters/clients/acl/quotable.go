package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/quotefetch/internal/adapters/clients"
	"github.com/jsamuelsen/quotefetch/internal/domain"
	"github.com/jsamuelsen/quotefetch/internal/platform/logging"
)

// quotableService is the downstream name used in errors and health checks.
const quotableService = "quotable"

// QuotableClientConfig contains configuration for the quotable adapter.
type QuotableClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should point at the quotable API.
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// QuotableClient implements ports.QuoteClient against a quotable-style API
// (GET /random returning content/author fields).
type QuotableClient struct {
	client *clients.Client
	logger *slog.Logger
}

// NewQuotableClient creates a new quotable adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewQuotableClient(cfg QuotableClientConfig) *QuotableClient {
	if cfg.Client == nil {
		panic("QuotableClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuotableClient{
		client: cfg.Client,
		logger: logger,
	}
}

// quotableResponse is the external DTO from a quotable-style API.
// Internal to the ACL, never exposed.
type quotableResponse struct {
	ID      string   `json:"_id"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

// Random fetches a random quote. Implements ports.QuoteClient.
func (c *QuotableClient) Random(ctx context.Context) (*domain.Quote, error) {
	const path = "/random"
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, domain.NewUnavailableError(quotableService, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		c.logError(resp)
		return nil, mapStatusError(quotableService, resp.StatusCode)
	}

	return c.parseQuote(resp.Body)
}

// parseQuote translates the external DTO to a domain Quote.
func (c *QuotableClient) parseQuote(body io.Reader) (*domain.Quote, error) {
	var external quotableResponse

	if err := json.NewDecoder(body).Decode(&external); err != nil {
		return nil, domain.NewValidationError("body", fmt.Sprintf("decoding quote response: %v", err))
	}

	quote := &domain.Quote{
		Text:   external.Content,
		Author: external.Author,
	}

	if err := validateQuote(quote); err != nil {
		return nil, err
	}

	return quote, nil
}

// logError logs a non-2xx provider response with its body.
func (c *QuotableClient) logError(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	c.logger.Warn("quote API error",
		slog.String("provider", quotableService),
		slog.Int("status_code", resp.StatusCode),
		slog.String("body", string(body)),
	)
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *QuotableClient) Name() string {
	return quotableService
}

// Check verifies connectivity to the provider.
// Implements ports.HealthChecker.
func (c *QuotableClient) Check(ctx context.Context) error {
	resp, err := c.client.Get(ctx, "/random")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	return nil
}
