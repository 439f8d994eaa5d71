package services

import (
	"driftline/config"
	"driftline/internal/database"
	"driftline/internal/repositories"
)

type Service struct {
	Transaction *TransactionService
	Score       *ScoreService
	Token       *TokenService
	Google      *GoogleService
	Storage     *StorageService
	Session     *SessionService
}

func New(db database.DB, config config.Config, repos repositories.Repository) Service {
	return Service{
		Transaction: NewTransactionService(db),
		Score:       NewScoreService(repos),
		Token:       NewTokenService(config),
		Google:      NewGoogleService(config),
		Storage:     NewStorageService(config),
		Session:     NewSessionService(db.Cache.Session, config),
	}
}
