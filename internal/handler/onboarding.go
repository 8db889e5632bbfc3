package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"goalnudge/internal/ctxkeys"
	"goalnudge/internal/service"
)

type OnboardingHandler struct {
	goalService *service.GoalService
	userService *service.UserService
}

func NewOnboardingHandler(goalService *service.GoalService, userService *service.UserService) *OnboardingHandler {
	return &OnboardingHandler{
		goalService: goalService,
		userService: userService,
	}
}

type onboardingRequest struct {
	Goals []service.GoalInput `json:"goals"`
}

// Complete marks the caller onboarded and replaces their goal set with the
// submitted one. Re-onboarding deletes the previous goals and their
// partners.
func (h *OnboardingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())

	var req onboardingRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.goalService.Onboard(identity, req.Goals)
	if err != nil {
		slog.Debug("onboarding rejected", "error", err, "identity", identity)
		writeServiceError(w, err, "Failed to save onboarding data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Onboarded reports whether the caller has completed onboarding. Without a
// verified identity it answers false with a 401 rather than an error page,
// so clients can branch on it directly.
func (h *OnboardingHandler) Onboarded(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())
	if identity == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]bool{"onboarded": false})
		return
	}

	onboarded, err := h.userService.IsOnboarded(identity)
	if err != nil {
		slog.Error("failed to load onboarding state", "error", err, "identity", identity)
		writeError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"onboarded": onboarded})
}
