package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSearchEcho(t *testing.T) (*echo.Echo, *mockUC.MockSearchUsecase) {
	searchUC := mockUC.NewMockSearchUsecase(t)
	h := NewSearchHandler(SearchHandlerParams{SearchUC: searchUC})

	e := newTestEcho(nil)
	e.POST("/api/smart-search", h.Search)

	return e, searchUC
}

func TestSearchHandler_Text(t *testing.T) {
	e, searchUC := newTestSearchEcho(t)

	searchUC.EXPECT().Search(mock.Anything, &usecase.SearchInput{Type: "text", Query: "blue pen"}).
		Return([]entity.ScoredResult{{
			ItemProjection: entity.ItemProjection{ID: 2, Category: entity.CategoryStationery, Title: "Blue Pen"},
			RelevanceScore: 4,
		}}, nil)

	rec := serve(e, jsonRequest(t, http.MethodPost, "/api/smart-search", map[string]any{"type": "text", "query": "blue pen"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"relevanceScore":4`)
	assert.Contains(t, rec.Body.String(), `"type":"stationary"`)
}

func TestSearchHandler_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]any
		details string
	}{
		{name: "missing type", body: map[string]any{"query": "pen"}, details: "type is required"},
		{name: "unknown type", body: map[string]any{"type": "audio"}, details: "type must be one of [text image]"},
		{name: "text without query", body: map[string]any{"type": "text"}, details: "query is required"},
		{name: "image without data", body: map[string]any{"type": "image"}, details: "imageData is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestSearchEcho(t)

			rec := serve(e, jsonRequest(t, http.MethodPost, "/api/smart-search", tt.body))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeEnvelope(t, rec).Error.Details, tt.details)
		})
	}
}

func TestSearchHandler_StorageFailureIsJSON(t *testing.T) {
	e, searchUC := newTestSearchEcho(t)

	searchUC.EXPECT().Search(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrSearchFailed, "relation does not exist"))

	rec := serve(e, jsonRequest(t, http.MethodPost, "/api/smart-search", map[string]any{"type": "text", "query": "pen"}))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "SEARCH_FAILED", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "relation does not exist")
}
