package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"goalnudge/internal/clock"
	"goalnudge/internal/config"
	"goalnudge/internal/db"
	"goalnudge/internal/repository"
	"goalnudge/internal/service"
)

type App struct {
	Cfg          *config.Config
	DB           *sqlx.DB
	AuthService  *service.AuthService
	UserService  *service.UserService
	EmailService *service.EmailService
	GoalService  *service.GoalService
	NudgeService *service.NudgeService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	partnerRepository := repository.NewPartnerRepository(database)

	// Services
	clk := clock.Real{}
	authService := service.NewAuthService(cfg.JWTSecret)
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	userService := service.NewUserService(userRepository, clk)
	goalService := service.NewGoalService(userService, goalRepository, partnerRepository, clk)
	nudgeService := service.NewNudgeService(goalRepository, partnerRepository, emailService, clk)

	return &App{
		Cfg:          cfg,
		DB:           database,
		AuthService:  authService,
		UserService:  userService,
		EmailService: emailService,
		GoalService:  goalService,
		NudgeService: nudgeService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
