package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"goalnudge/internal/model"
	"goalnudge/internal/service"
)

type NudgeHandler struct {
	nudgeService *service.NudgeService
	cronSecret   string
}

func NewNudgeHandler(nudgeService *service.NudgeService, cronSecret string) *NudgeHandler {
	return &NudgeHandler{
		nudgeService: nudgeService,
		cronSecret:   cronSecret,
	}
}

type sweepResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	*model.SweepReport
}

// Sweep runs one nudge pass over all goals. Meant to be hit by a scheduler;
// when a cron secret is configured the caller must present it as a bearer
// token, compared in constant time.
func (h *NudgeHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	if h.cronSecret != "" {
		want := "Bearer " + h.cronSecret
		got := r.Header.Get("Authorization")
		if subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
	}

	report, err := h.nudgeService.RunSweep(r.Context())
	if err != nil {
		slog.Error("nudge sweep failed", "error", err)
		// A partial report still tells the operator how far the sweep got.
		writeJSON(w, http.StatusInternalServerError, sweepResponse{
			Success:     false,
			Error:       "Sweep failed",
			SweepReport: report,
		})
		return
	}

	writeJSON(w, http.StatusOK, sweepResponse{
		Success:     true,
		SweepReport: report,
	})
}
