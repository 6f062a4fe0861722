package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when the session token is absent, unknown, or expired.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrCategoryInUse is returned when deleting a category that still has products.
	ErrCategoryInUse = errors.New("category has products and cannot be deleted")
	// ErrMenuCategoryInUse is returned when deleting a menu category that still has items.
	ErrMenuCategoryInUse = errors.New("menu category has items and cannot be deleted")
	// ErrInvalidRating is returned when a review rating is outside 1-5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrInvalidReview is returned when reviewer name or comment fails validation.
	ErrInvalidReview = errors.New("reviewer name is required and comment must be at least 5 characters")
	// ErrInvalidStatus is returned for an unknown order status.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrInvalidUploadType is returned for an unknown upload type segment.
	ErrInvalidUploadType = errors.New("invalid upload type")
	// ErrInvalidUploadFile is returned for a disallowed extension or oversized file.
	ErrInvalidUploadFile = errors.New("invalid upload file")
)

// StatusCode maps domain errors to HTTP status codes. Unknown errors are
// treated as unexpected store failures.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrCategoryInUse),
		errors.Is(err, ErrMenuCategoryInUse),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrInvalidReview),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidUploadType),
		errors.Is(err, ErrInvalidUploadFile):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
