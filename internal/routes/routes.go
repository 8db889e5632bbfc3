package routes

import (
	"net/http"

	"goalnudge/internal/app"
	"goalnudge/internal/handler"
	"goalnudge/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	onboarding := handler.NewOnboardingHandler(app.GoalService, app.UserService)
	goal := handler.NewGoalHandler(app.GoalService)
	checkIn := handler.NewCheckInHandler(app.GoalService)
	nudge := handler.NewNudgeHandler(app.NudgeService, app.Cfg.CronSecret)

	mux := http.NewServeMux()

	// Onboarding. The status probe answers 401 itself so clients can branch
	// on the body instead of an error page.
	mux.HandleFunc("GET /api/user/onboarded", onboarding.Onboarded)
	mux.HandleFunc("POST /api/onboarding", middleware.RequireAuth(onboarding.Complete))

	// Goals
	mux.HandleFunc("GET /api/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("DELETE /api/goals/{id}", middleware.RequireAuth(goal.Delete))

	// Check-ins (rate limited)
	rateLimiter := middleware.RateLimitCheckIn()
	mux.HandleFunc("POST /api/checkin", rateLimiter(middleware.RequireAuth(checkIn.CheckIn)))

	// Scheduler entrypoint; guarded by the cron secret, not user auth.
	mux.HandleFunc("GET /api/cron/nudge", nudge.Sweep)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.Auth(app.AuthService),
	)
}
