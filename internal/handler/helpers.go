package handler

import (
	"errors"
	"fmt"
	"net/http"

	"htmlblock/internal/domain"
	"htmlblock/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// courseID extracts the course scope from the query string
func courseID(r *http.Request) (string, error) {
	id := r.URL.Query().Get("course_id")
	if id == "" {
		return "", fmt.Errorf("%w: course_id is required", domain.ErrValidation)
	}
	return id, nil
}
