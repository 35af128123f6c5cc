package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotefetch/internal/domain"
	"github.com/jsamuelsen/quotefetch/internal/fetch"
)

func TestNewQuoteView(t *testing.T) {
	tests := []struct {
		name  string
		state fetch.State
		want  QuoteView
	}{
		{
			name:  "loading without quote",
			state: fetch.State{Phase: fetch.PhaseLoading},
			want:  QuoteView{Status: StatusLoading},
		},
		{
			name: "ready",
			state: fetch.State{
				Phase: fetch.PhaseReady,
				Quote: &domain.Quote{Text: "t", Author: "a"},
			},
			want: QuoteView{
				Status: StatusReady,
				Quote:  &QuoteBody{Text: "t", Author: "a"},
			},
		},
		{
			name: "error keeps previous quote",
			state: fetch.State{
				Phase: fetch.PhaseError,
				Err:   fetch.ErrMessage,
				Quote: &domain.Quote{Text: "t", Author: "a"},
			},
			want: QuoteView{
				Status: StatusError,
				Error:  fetch.ErrMessage,
				Quote:  &QuoteBody{Text: "t", Author: "a"},
			},
		},
		{
			name: "loading keeps previous quote",
			state: fetch.State{
				Phase: fetch.PhaseLoading,
				Quote: &domain.Quote{Text: "t", Author: "a"},
			},
			want: QuoteView{
				Status: StatusLoading,
				Quote:  &QuoteBody{Text: "t", Author: "a"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewQuoteView(tt.state))
		})
	}
}

func TestQuoteView_JSONShape(t *testing.T) {
	view := NewQuoteView(fetch.State{Phase: fetch.PhaseLoading})

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	// Omitted fields stay out of the payload entirely.
	assert.JSONEq(t, `{"status":"loading"}`, string(raw))
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "conflict",
			err:        domain.NewConflictError("quote", "fetch in flight"),
			wantStatus: http.StatusConflict,
			wantCode:   ErrorCodeConflict,
		},
		{
			name:       "validation",
			err:        domain.NewValidationError("body", "invalid JSON"),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeValidation,
		},
		{
			name:       "unavailable",
			err:        domain.NewUnavailableError("quotable", "HTTP 503"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrorCodeUnavailable,
		},
		{
			name:       "unknown",
			err:        errors.New("something odd"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestMapDomainError_ValidationDetails(t *testing.T) {
	_, resp := MapDomainError(domain.NewValidationError("author", "missing"))
	require.NotNil(t, resp)
	assert.Equal(t, map[string]string{"author": "missing"}, resp.Error.Details)
}

func TestMapDomainError_UnknownHidesInternals(t *testing.T) {
	_, resp := MapDomainError(errors.New("pq: secret dsn leaked"))
	require.NotNil(t, resp)
	assert.Equal(t, "an internal error occurred", resp.Error.Message)
}

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/quote/refresh", nil)

	HandleError(c, domain.NewConflictError("quote", "fetch in flight"))

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrorCodeConflict, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "fetch in flight")
}

func TestHTTPStatusFromCode(t *testing.T) {
	assert.Equal(t, http.StatusConflict, HTTPStatusFromCode(ErrorCodeConflict))
	assert.Equal(t, http.StatusBadRequest, HTTPStatusFromCode(ErrorCodeValidation))
	assert.Equal(t, http.StatusBadRequest, HTTPStatusFromCode(ErrorCodeBadRequest))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatusFromCode(ErrorCodeUnavailable))
	assert.Equal(t, http.StatusGatewayTimeout, HTTPStatusFromCode(ErrorCodeTimeout))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromCode("SOMETHING_ELSE"))
}
