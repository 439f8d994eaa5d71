package services

import (
	"context"
	"time"

	"driftline/config"
	"driftline/internal/database"
	"driftline/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/valkey-io/valkey-go"
)

const (
	REVOKED_TOKEN_CACHE_PREFIX = "revoked:"
	OAUTH_STATE_CACHE_PREFIX   = "oauthstate:"
)

// oauthStateTTL bounds how long a browser has to come back from the
// consent page.
const oauthStateTTL = 10 * time.Minute

// SessionService tracks revoked bearer tokens so logout takes effect before
// a token's natural expiry. Entries are keyed by token digest and live
// exactly as long as the token could.
type SessionService struct {
	cache    valkey.Client
	tokenTTL time.Duration
	log      logger.Logger
}

func NewSessionService(cache valkey.Client, config config.Config) *SessionService {
	return &SessionService{
		cache:    cache,
		tokenTTL: time.Duration(config.TokenExpireMinutes) * time.Minute,
		log:      logger.New("sessionService"),
	}
}

// RevokeToken marks a bearer token as logged out.
func (s *SessionService) RevokeToken(ctx context.Context, token string) error {
	log := s.log.Function("RevokeToken")

	key := REVOKED_TOKEN_CACHE_PREFIX + utils.HashToken(token)
	err := database.NewCacheBuilder(s.cache, key).
		WithValue("revoked").
		WithTTL(s.tokenTTL).
		WithContext(ctx).
		Set()
	if err != nil {
		return log.Err("failed to store revoked token", err)
	}

	return nil
}

// StoreOAuthState records a state nonce for the browser sign-in flow. The
// callback must present it back before the entry expires.
func (s *SessionService) StoreOAuthState(ctx context.Context, state string) error {
	log := s.log.Function("StoreOAuthState")

	err := database.NewCacheBuilder(s.cache, OAUTH_STATE_CACHE_PREFIX+state).
		WithValue("pending").
		WithTTL(oauthStateTTL).
		WithContext(ctx).
		Set()
	if err != nil {
		return log.Err("failed to store oauth state", err)
	}

	return nil
}

// ConsumeOAuthState reports whether the state nonce was issued here, and
// burns it so a callback URL cannot be replayed.
func (s *SessionService) ConsumeOAuthState(ctx context.Context, state string) bool {
	log := s.log.Function("ConsumeOAuthState")

	builder := database.NewCacheBuilder(s.cache, OAUTH_STATE_CACHE_PREFIX+state).
		WithContext(ctx)

	found, err := builder.Exists()
	if err != nil {
		log.Warn("failed to check oauth state", "error", err)
		return false
	}
	if !found {
		return false
	}

	if err := builder.Delete(); err != nil {
		log.Warn("failed to burn oauth state", "error", err)
	}

	return true
}

// IsTokenRevoked reports whether a token was revoked by logout. A cache
// outage is logged and treated as not revoked so sign-ins keep working.
func (s *SessionService) IsTokenRevoked(ctx context.Context, token string) bool {
	log := s.log.Function("IsTokenRevoked")

	key := REVOKED_TOKEN_CACHE_PREFIX + utils.HashToken(token)
	found, err := database.NewCacheBuilder(s.cache, key).
		WithContext(ctx).
		Exists()
	if err != nil {
		log.Warn("failed to check revoked token", "error", err)
		return false
	}

	return found
}
