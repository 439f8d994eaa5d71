package services

import (
	"fmt"
	"time"

	"driftline/config"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the signed bearer tokens that identify a
// signed-in user. Tokens are HS256-signed with the user's email as subject.
type TokenService struct {
	secretKey []byte
	expiry    time.Duration
	log       logger.Logger
}

func NewTokenService(config config.Config) *TokenService {
	return &TokenService{
		secretKey: []byte(config.SecretKey),
		expiry:    time.Duration(config.TokenExpireMinutes) * time.Minute,
		log:       logger.New("tokenService"),
	}
}

// Expiry returns the lifetime stamped on newly issued tokens.
func (s *TokenService) Expiry() time.Duration {
	return s.expiry
}

// GenerateToken signs a new token for the given email, expiring after the
// configured lifetime.
func (s *TokenService) GenerateToken(email string) (string, error) {
	log := s.log.Function("GenerateToken")

	claims := jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", log.Err("failed to sign token", err)
	}

	return signed, nil
}

// ValidateToken parses and verifies a token and returns its subject email.
// Expired tokens, bad signatures, and tokens without a subject all fail.
func (s *TokenService) ValidateToken(tokenString string) (string, error) {
	log := s.log.Function("ValidateToken")

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secretKey, nil
		},
	)
	if err != nil {
		return "", log.Err("failed to parse token", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", log.ErrMsg("token claims are invalid")
	}

	if claims.Subject == "" {
		return "", log.ErrMsg("token has no subject")
	}

	return claims.Subject, nil
}
