package middleware

import (
	"driftline/config"
	"driftline/internal/database"
	"driftline/internal/repositories"
	"driftline/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type Middleware struct {
	DB             database.DB
	userRepo       repositories.UserRepository
	tokenService   *services.TokenService
	sessionService *services.SessionService
	Config         config.Config
	log            logger.Logger
}

func New(
	db database.DB,
	config config.Config,
	repos repositories.Repository,
	services services.Service,
) Middleware {
	return Middleware{
		DB:             db,
		userRepo:       repos.User,
		tokenService:   services.Token,
		sessionService: services.Session,
		Config:         config,
		log:            logger.New("middleware"),
	}
}
