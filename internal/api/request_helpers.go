package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// getPathInt extracts a positive integer from the URL path parameters.
//
// Returns an error if the parameter is missing, not a number, or not
// positive (entity ids start at 1).
func getPathInt(r *http.Request, paramName string) (int, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%s is required", paramName)
	}

	id, err := strconv.Atoi(pathParam)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%s has invalid format", paramName)
	}

	return id, nil
}
