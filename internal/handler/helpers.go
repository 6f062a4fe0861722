package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"backoffice/internal/repository"
	"backoffice/internal/response"
)

// parseID reads a numeric path parameter. ok is false for missing or
// non-numeric values.
func parseID(c echo.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// listFilter builds the common list filter from query parameters:
// search, status (active/inactive), category_id, page, limit.
func listFilter(c echo.Context) repository.ListFilter {
	filter := repository.ListFilter{Search: c.QueryParam("search")}
	filter.Page, filter.PerPage = response.ParsePage(c)

	switch c.QueryParam("status") {
	case "active":
		active := true
		filter.Active = &active
	case "inactive":
		active := false
		filter.Active = &active
	}

	if v, err := strconv.ParseUint(c.QueryParam("category_id"), 10, 32); err == nil {
		filter.CategoryID = uint(v)
	}
	if v, err := strconv.ParseUint(c.QueryParam("product_id"), 10, 32); err == nil {
		filter.ProductID = uint(v)
	}
	filter.Status = c.QueryParam("order_status")
	return filter
}
