package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Nikaum-js/CodeTheKey/internal/catalog"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error": msg,
	})
}

// apiError maps catalog failures onto API statuses: a missing course is the
// caller's 404, an upstream failure is a 502.
func apiError(w http.ResponseWriter, err error) {
	var fe *catalog.FetchError
	switch {
	case errors.Is(err, catalog.ErrCourseNotFound):
		writeError(w, http.StatusNotFound, "course not found")
	case errors.As(err, &fe):
		writeError(w, http.StatusBadGateway, "failed to fetch playlist data")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
