package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"goalnudge/internal/repository"
	"goalnudge/internal/service"
	"goalnudge/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps service errors onto HTTP statuses: validation
// failures become 400, a missing user or goal 404, a goal owned by someone
// else 403. Anything unexpected gets a 500 with the generic fallback message.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, repository.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, repository.ErrGoalNotFound):
		writeError(w, http.StatusNotFound, "Goal not found")
	case errors.Is(err, service.ErrNotGoalOwner):
		writeError(w, http.StatusForbidden, "Goal belongs to another user")
	default:
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
