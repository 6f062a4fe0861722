package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		page          int
		perPage       int
		expectedPages int
	}{
		{"exact multiple", 40, 1, 20, 2},
		{"partial last page", 45, 1, 20, 3},
		{"single row", 1, 1, 20, 1},
		{"empty result", 0, 1, 20, 0},
		{"defaults on bad inputs", 45, 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.expectedPages, p.TotalPages)
			assert.Equal(t, tt.total, p.Total)
			assert.GreaterOrEqual(t, p.CurrentPage, 1)
			assert.GreaterOrEqual(t, p.PerPage, 1)
		})
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name            string
		query           string
		expectedPage    int
		expectedPerPage int
	}{
		{"defaults", "", 1, 20},
		{"explicit values", "page=3&limit=50", 3, 50},
		{"non-numeric falls back", "page=abc&limit=xyz", 1, 20},
		{"zero falls back", "page=0&limit=0", 1, 20},
		{"negative falls back", "page=-1&limit=-5", 1, 20},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			page, perPage := ParsePage(c)
			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedPerPage, perPage)
		})
	}
}

func TestOK_Envelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := OK(c, map[string]string{"k": "v"})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"k":"v"}}`, rec.Body.String())
}

func TestFail_Envelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Fail(c, http.StatusUnauthorized, "authentication required")

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"authentication required"}`, rec.Body.String())
}
