package repositories

import (
	"context"
	"driftline/internal/database"
	. "driftline/internal/models"
	"errors"
	"strconv"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

const (
	USER_CACHE_EXPIRY          = 7 * 24 * time.Hour // 7 days
	USER_CACHE_PREFIX          = "user:"
	EMAIL_MAPPING_CACHE_PREFIX = "email:"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}

type userRepository struct {
	db  database.DB
	log logger.Logger
}

func NewUserRepository(db database.DB) UserRepository {
	return &userRepository{
		db:  db,
		log: logger.New("userRepository"),
	}
}

// GetByEmail returns the user owning the email, or nil when no account
// exists. Absence is routine on the registration and external sign-in paths.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	log := r.log.Function("GetByEmail")

	// Try the email -> id mapping cache first, then the primary user cache
	var userID int
	emailCacheKey := EMAIL_MAPPING_CACHE_PREFIX + email
	found, err := database.NewCacheBuilder(r.db.Cache.User, emailCacheKey).
		WithContext(ctx).
		Get(&userID)
	if err == nil && found {
		var cachedUser User
		if err := r.getCacheByID(ctx, userID, &cachedUser); err == nil {
			return &cachedUser, nil
		}
	}

	var user User
	if err := r.db.SQLWithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get user by email", err, "email", email)
	}

	if err := r.addUserToCache(ctx, &user); err != nil {
		log.Warn("failed to add user to cache", "userID", user.ID, "error", err)
	}

	if err := database.NewCacheBuilder(r.db.Cache.User, emailCacheKey).
		WithStruct(user.ID).
		WithTTL(USER_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		log.Warn("failed to cache email mapping", "email", email, "error", err)
	}

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *User) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(user).Error; err != nil {
		return log.Err("failed to create user", err, "email", user.Email)
	}

	if err := r.addUserToCache(ctx, user); err != nil {
		log.Warn("failed to add user to cache", "userID", user.ID, "error", err)
	}

	return nil
}

func (r *userRepository) getCacheByID(ctx context.Context, userID int, user *User) error {
	cacheKey := USER_CACHE_PREFIX + strconv.Itoa(userID)
	found, err := database.NewCacheBuilder(r.db.Cache.User, cacheKey).WithContext(ctx).Get(user)
	if err != nil {
		return r.log.Function("getCacheByID").
			Err("failed to get user from cache", err, "userID", userID)
	}

	if !found {
		return r.log.Function("getCacheByID").
			Error("user not found in cache", "userID", userID)
	}

	return nil
}

func (r *userRepository) addUserToCache(ctx context.Context, user *User) error {
	cacheKey := USER_CACHE_PREFIX + strconv.Itoa(user.ID)
	if err := database.NewCacheBuilder(r.db.Cache.User, cacheKey).
		WithStruct(user).
		WithTTL(USER_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		return r.log.Function("addUserToCache").
			Err("failed to add user to cache", err, "userID", user.ID)
	}
	return nil
}

