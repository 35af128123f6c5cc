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

const dummyJSONService = "dummyjson"

// DummyJSONClientConfig contains configuration for the dummyjson adapter.
type DummyJSONClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should point at the dummyjson API.
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// DummyJSONClient implements ports.QuoteClient against a dummyjson-style API
// (GET /quotes/random returning quote/author fields and a numeric id).
type DummyJSONClient struct {
	client *clients.Client
	logger *slog.Logger
}

// NewDummyJSONClient creates a new dummyjson adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewDummyJSONClient(cfg DummyJSONClientConfig) *DummyJSONClient {
	if cfg.Client == nil {
		panic("DummyJSONClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &DummyJSONClient{
		client: cfg.Client,
		logger: logger,
	}
}

// dummyJSONResponse is the external DTO from a dummyjson-style API.
type dummyJSONResponse struct {
	ID     int    `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// Random fetches a random quote. Implements ports.QuoteClient.
func (c *DummyJSONClient) Random(ctx context.Context) (*domain.Quote, error) {
	const path = "/quotes/random"
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, domain.NewUnavailableError(dummyJSONService, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		c.logError(resp)
		return nil, mapStatusError(dummyJSONService, resp.StatusCode)
	}

	return c.parseQuote(resp.Body)
}

// parseQuote translates the external DTO to a domain Quote.
func (c *DummyJSONClient) parseQuote(body io.Reader) (*domain.Quote, error) {
	var external dummyJSONResponse

	if err := json.NewDecoder(body).Decode(&external); err != nil {
		return nil, domain.NewValidationError("body", fmt.Sprintf("decoding quote response: %v", err))
	}

	quote := &domain.Quote{
		Text:   external.Quote,
		Author: external.Author,
	}

	if err := validateQuote(quote); err != nil {
		return nil, err
	}

	return quote, nil
}

func (c *DummyJSONClient) logError(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	c.logger.Warn("quote API error",
		slog.String("provider", dummyJSONService),
		slog.Int("status_code", resp.StatusCode),
		slog.String("body", string(body)),
	)
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *DummyJSONClient) Name() string {
	return dummyJSONService
}

// Check verifies connectivity to the provider.
// Implements ports.HealthChecker.
func (c *DummyJSONClient) Check(ctx context.Context) error {
	resp, err := c.client.Get(ctx, "/quotes/random")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	return nil
}
