package authController

import (
	"context"

	. "driftline/internal/models"
	"driftline/internal/repositories"
	"driftline/internal/services"
	"driftline/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthController handles registration, credential and Google sign-in, and
// logout revocation.
type AuthController struct {
	userRepo       repositories.UserRepository
	tokenService   *services.TokenService
	googleService  *services.GoogleService
	sessionService *services.SessionService
	log            logger.Logger
}

type AuthControllerInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	LoginWithGoogleToken(ctx context.Context, req GoogleTokenRequest) (*TokenResponse, error)
	BeginGoogleRedirect(ctx context.Context) (string, error)
	CompleteGoogleRedirect(ctx context.Context, code, state string) (*TokenResponse, error)
	Logout(ctx context.Context, token string) error
}

type RegisterRequest struct {
	Email    string  `json:"email"            validate:"required"`
	Name     *string `json:"name,omitempty"`
	Number   *string `json:"number,omitempty"`
	Password string  `json:"password"         validate:"required"`
}

// LoginRequest accepts both the JSON body and the form-encoded fields the
// password flow posts. The username field carries the email address.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type GoogleTokenRequest struct {
	AccessToken string `json:"access_token"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func New(
	services services.Service,
	repos repositories.Repository,
) AuthControllerInterface {
	return &AuthController{
		userRepo:       repos.User,
		tokenService:   services.Token,
		googleService:  services.Google,
		sessionService: services.Session,
		log:            logger.New("authController"),
	}
}

// Register creates a local-credential user and signs them in. An existing
// user with the same email fails with the email-conflict error.
func (c *AuthController) Register(
	ctx context.Context,
	req RegisterRequest,
) (*TokenResponse, error) {
	log := c.log.Function("Register")

	existing, err := c.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, log.Err("failed to check for existing user", err, "email", req.Email)
	}
	if existing != nil {
		return nil, types.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, log.Err("failed to hash password", err)
	}

	hashed := string(hash)
	user := &User{
		Email:          req.Email,
		Name:           req.Name,
		Number:         req.Number,
		HashedPassword: &hashed,
	}

	if err := c.userRepo.Create(ctx, user); err != nil {
		return nil, log.Err("failed to create user", err, "email", req.Email)
	}

	log.Info("User registered", "userID", user.ID, "email", user.Email)

	return c.issueToken(user.Email)
}

// Login verifies an email/password pair. Missing users, external-provider
// users without a password, and wrong passwords all fail identically.
func (c *AuthController) Login(
	ctx context.Context,
	req LoginRequest,
) (*TokenResponse, error) {
	log := c.log.Function("Login")

	user, err := c.userRepo.GetByEmail(ctx, req.Username)
	if err != nil {
		return nil, log.Err("failed to look up user", err, "email", req.Username)
	}

	if user == nil || !user.HasLocalCredentials() {
		return nil, types.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword(
		[]byte(*user.HashedPassword),
		[]byte(req.Password),
	) != nil {
		return nil, types.ErrInvalidCredentials
	}

	log.Info("User logged in", "userID", user.ID)

	return c.issueToken(user.Email)
}

// LoginWithGoogleToken signs in with a Google access token the client
// already holds.
func (c *AuthController) LoginWithGoogleToken(
	ctx context.Context,
	req GoogleTokenRequest,
) (*TokenResponse, error) {
	log := c.log.Function("LoginWithGoogleToken")

	if req.AccessToken == "" {
		return nil, types.ErrInvalidGoogleCredentials
	}

	info, err := c.googleService.GetUserInfo(ctx, req.AccessToken)
	if err != nil {
		log.Warn("google token rejected", "error", err.Error())
		return nil, types.ErrInvalidGoogleCredentials
	}

	return c.loginExternalUser(ctx, info.Email)
}

// BeginGoogleRedirect mints a single-use state nonce and returns the
// consent page URL for the browser flow.
func (c *AuthController) BeginGoogleRedirect(ctx context.Context) (string, error) {
	log := c.log.Function("BeginGoogleRedirect")

	state := uuid.New().String()
	if err := c.sessionService.StoreOAuthState(ctx, state); err != nil {
		return "", log.Err("failed to store oauth state", err)
	}

	return c.googleService.AuthCodeURL(state), nil
}

// CompleteGoogleRedirect finishes the browser flow: checks the state nonce,
// exchanges the callback code, fetches the profile, and signs the user in.
func (c *AuthController) CompleteGoogleRedirect(
	ctx context.Context,
	code, state string,
) (*TokenResponse, error) {
	log := c.log.Function("CompleteGoogleRedirect")

	if code == "" {
		return nil, types.ErrInvalidGoogleCredentials
	}

	if !c.sessionService.ConsumeOAuthState(ctx, state) {
		log.Warn("unknown or replayed oauth state")
		return nil, types.ErrInvalidGoogleCredentials
	}

	token, err := c.googleService.ExchangeCode(ctx, code)
	if err != nil {
		log.Warn("authorization code rejected", "error", err.Error())
		return nil, types.ErrInvalidGoogleCredentials
	}

	info, err := c.googleService.GetUserInfo(ctx, token.AccessToken)
	if err != nil {
		log.Warn("google token rejected", "error", err.Error())
		return nil, types.ErrInvalidGoogleCredentials
	}

	return c.loginExternalUser(ctx, info.Email)
}

// loginExternalUser finds or creates the external-provider user for a
// Google email. An email already registered with a password fails with the
// email-conflict error.
func (c *AuthController) loginExternalUser(
	ctx context.Context,
	email string,
) (*TokenResponse, error) {
	log := c.log.Function("loginExternalUser")

	user, err := c.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, log.Err("failed to look up user", err, "email", email)
	}

	if user != nil {
		if !user.ExternalProvider {
			return nil, types.ErrEmailAlreadyUsed
		}
	} else {
		user = &User{
			Email:            email,
			ExternalProvider: true,
		}
		if err := c.userRepo.Create(ctx, user); err != nil {
			return nil, log.Err("failed to create external user", err, "email", email)
		}
		log.Info("External user created", "userID", user.ID, "email", user.Email)
	}

	return c.issueToken(user.Email)
}

// Logout revokes the presented bearer token so it stops working before its
// natural expiry.
func (c *AuthController) Logout(ctx context.Context, token string) error {
	log := c.log.Function("Logout")

	if token == "" {
		return nil
	}

	if err := c.sessionService.RevokeToken(ctx, token); err != nil {
		return log.Err("failed to revoke token", err)
	}

	return nil
}

func (c *AuthController) issueToken(email string) (*TokenResponse, error) {
	token, err := c.tokenService.GenerateToken(email)
	if err != nil {
		return nil, c.log.Function("issueToken").Err("failed to issue token", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
