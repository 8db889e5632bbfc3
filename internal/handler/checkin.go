package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"goalnudge/internal/ctxkeys"
	"goalnudge/internal/repository"
	"goalnudge/internal/service"
)

type CheckInHandler struct {
	goalService *service.GoalService
}

func NewCheckInHandler(goalService *service.GoalService) *CheckInHandler {
	return &CheckInHandler{
		goalService: goalService,
	}
}

type checkInRequest struct {
	GoalID string `json:"goalId"`
}

type checkInResponse struct {
	Success       bool   `json:"success"`
	Streak        int    `json:"streak"`
	LastCheckInAt string `json:"lastCheckInAt"`
	Message       string `json:"message,omitempty"`
}

// CheckIn records today's check-in for one of the caller's goals.
// Checking in twice on the same day succeeds with the unchanged streak and
// a message; it is not an error.
func (h *CheckInHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())

	var req checkInRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.GoalID == "" {
		writeError(w, http.StatusBadRequest, "Goal ID is required")
		return
	}

	result, err := h.goalService.CheckIn(identity, req.GoalID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) &&
			!errors.Is(err, repository.ErrGoalNotFound) &&
			!errors.Is(err, service.ErrNotGoalOwner) {
			slog.Error("check-in failed", "error", err, "identity", identity, "goal_id", req.GoalID)
		}
		writeServiceError(w, err, "Failed to record check-in")
		return
	}

	resp := checkInResponse{
		Success:       true,
		Streak:        result.Streak,
		LastCheckInAt: result.LastCheckInAt.Format(time.RFC3339),
	}
	if result.AlreadyDone {
		resp.Message = "Already checked in today"
	}

	writeJSON(w, http.StatusOK, resp)
}
