package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"goalnudge/internal/ctxkeys"
	"goalnudge/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// Create adds a single goal (with optional partners) for the caller.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())

	var input service.GoalInput
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goalService.AddGoal(identity, input)
	if err != nil {
		slog.Debug("add goal rejected", "error", err, "identity", identity)
		writeServiceError(w, err, "Failed to save goal")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"goalId":  goal.ID,
	})
}

// List returns the caller's goals with their partners and streak state.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())

	goals, err := h.goalService.Goals(identity)
	if err != nil {
		slog.Error("failed to list goals", "error", err, "identity", identity)
		writeServiceError(w, err, "Failed to load goals")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"goals": goals})
}

// Delete removes one of the caller's goals along with all its partners.
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())
	goalID := r.PathValue("id")

	err := h.goalService.Delete(identity, goalID)
	if err != nil {
		slog.Debug("delete goal rejected", "error", err, "identity", identity, "goal_id", goalID)
		writeServiceError(w, err, "Failed to delete goal")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
