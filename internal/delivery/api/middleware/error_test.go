package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		contains     []string
		absent       []string
	}{
		{
			name:         "app error with details",
			err:          errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("title is required")),
			expectedCode: http.StatusBadRequest,
			contains:     []string{"VALIDATION_FAILED", "title is required"},
		},
		{
			name:         "server app error hides details",
			err:          errors.Wrap(domainerrors.ErrSearchFailed.WithDetails("pq: relation missing"), "search"),
			expectedCode: http.StatusInternalServerError,
			contains:     []string{"SEARCH_FAILED"},
			absent:       []string{"relation missing"},
		},
		{
			name:         "echo error",
			err:          echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			expectedCode: http.StatusNotFound,
			contains:     []string{"ROUTE_NOT_FOUND", "Not Found"},
		},
		{
			name:         "body too large",
			err:          echo.ErrStatusRequestEntityTooLarge,
			expectedCode: http.StatusRequestEntityTooLarge,
			contains:     []string{"PAYLOAD_TOO_LARGE"},
		},
		{
			name:         "other echo error",
			err:          echo.NewHTTPError(http.StatusTooManyRequests),
			expectedCode: http.StatusTooManyRequests,
			contains:     []string{"HTTP_ERROR", "Too Many Requests"},
		},
		{
			name:         "unknown error",
			err:          errors.New("dial tcp: connection refused"),
			expectedCode: http.StatusInternalServerError,
			contains:     []string{"INTERNAL_ERROR"},
			absent:       []string{"connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/items", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.expectedCode, rec.Code)
			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, rec.Body.String(), s)
			}
		})
	}
}
