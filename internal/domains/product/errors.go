package product

import (
	"errors"
	"net/http"
)

// Domain errors. Not-found is an expected outcome of lookups, distinct
// from storage failures; the handler maps it to a 404.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidRequest  = errors.New("invalid request")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
