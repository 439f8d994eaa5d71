package app

import (
	"driftline/config"
	"driftline/internal/controllers"
	"driftline/internal/database"
	"driftline/internal/handlers/middleware"
	"driftline/internal/repositories"
	"driftline/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	Services    services.Service
	Repos       repositories.Repository
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New(db)
	services := services.New(db, config, repos)
	middleware := middleware.New(db, config, repos, services)
	controllers := controllers.New(services, repos, db)

	app := &App{
		Database:    db,
		Config:      config,
		Middleware:  middleware,
		Services:    services,
		Repos:       repos,
		Controllers: controllers,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Services.Transaction,
		a.Services.Score,
		a.Services.Token,
		a.Services.Google,
		a.Services.Storage,
		a.Services.Session,
		a.Repos.User,
		a.Repos.Location,
		a.Repos.Booking,
		a.Repos.Feedback,
		a.Repos.Flotsam,
		a.Controllers.Auth,
		a.Controllers.Booking,
		a.Controllers.Location,
		a.Controllers.Feedback,
		a.Controllers.Storage,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
