package response

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "backoffice/internal/errors"
)

// Body is the uniform response envelope.
type Body struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Pagination describes the position of a list page within the full result set.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
}

// PageData nests rows and pagination under the envelope's data field.
type PageData struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

const (
	// DefaultPage is used when the page query param is missing or not numeric.
	DefaultPage = 1
	// DefaultPerPage is used when the limit query param is missing or not numeric.
	DefaultPerPage = 20
)

// OK writes a 200 success envelope. A nil data yields {"success":true}.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

// Message writes a 200 success envelope with a message and optional data.
func Message(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Body{Success: true, Message: message, Data: data})
}

// Page writes a 200 list envelope with pagination computed from total rows.
func Page(c echo.Context, rows interface{}, total int64, page, perPage int) error {
	return OK(c, PageData{Data: rows, Pagination: NewPagination(total, page, perPage)})
}

// Fail writes an error envelope with the given status.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Body{Success: false, Message: message})
}

// Error maps a domain error to its status code and writes the envelope.
// Unexpected errors are logged server-side and replaced with a generic message.
func Error(c echo.Context, err error) error {
	status := apperrors.StatusCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		message = "something went wrong"
	}
	return Fail(c, status, message)
}

// NewPagination computes page math for a filtered result set.
func NewPagination(total int64, page, perPage int) Pagination {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = DefaultPage
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return Pagination{CurrentPage: page, TotalPages: totalPages, Total: total, PerPage: perPage}
}

// ParsePage reads page/limit query params with defaults 1/20. Non-numeric
// or non-positive values fall back to the defaults.
func ParsePage(c echo.Context) (page, perPage int) {
	page = DefaultPage
	perPage = DefaultPerPage
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		perPage = v
	}
	return page, perPage
}
