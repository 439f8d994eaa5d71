package handlers

import (
	"driftline/internal/app"
	authController "driftline/internal/controllers/auth"
	"driftline/internal/handlers/middleware"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Handler
	authController authController.AuthControllerInterface
}

func NewAuthHandler(app app.App, router fiber.Router) *AuthHandler {
	log := logger.New("handlers").File("auth_handler")
	return &AuthHandler{
		authController: app.Controllers.Auth,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AuthHandler) Register() {
	// Public endpoints
	h.router.Post("/login", h.login)
	h.router.Post("/register", h.register)
	h.router.Post("/login-google", h.loginGoogle)
	h.router.Get("/login-google", h.loginGoogleRedirect)
	h.router.Get("/oauth-redirect", h.oauthRedirect)

	// Protected endpoints - require a valid bearer token
	h.router.Get("/token", h.middleware.RequireAuth(), h.token)
	h.router.Get("/logout", h.middleware.RequireAuth(), h.logout)
	h.router.Get("/me", h.middleware.RequireAuth(), h.middleware.RequireActive(), h.me)
}

// login accepts the password flow as either a form post or a JSON body. The
// username field carries the email address.
func (h *AuthHandler) login(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("auth_handler").Function("login")

	var req authController.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	token, err := h.authController.Login(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(token)
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("auth_handler").Function("register")

	var req authController.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Email and password are required",
		})
	}

	token, err := h.authController.Register(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(token)
}

// loginGoogle signs in with a Google access token the client already holds.
func (h *AuthHandler) loginGoogle(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("auth_handler").Function("loginGoogle")

	var req authController.GoogleTokenRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn("Invalid request body", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	token, err := h.authController.LoginWithGoogleToken(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(token)
}

// loginGoogleRedirect sends the browser to the Google consent page.
func (h *AuthHandler) loginGoogleRedirect(c *fiber.Ctx) error {
	url, err := h.authController.BeginGoogleRedirect(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.Redirect(url)
}

// oauthRedirect is the callback Google sends the browser back to.
func (h *AuthHandler) oauthRedirect(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")

	token, err := h.authController.CompleteGoogleRedirect(c.Context(), code, state)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(token)
}

// token echoes the bearer token the request authenticated with.
func (h *AuthHandler) token(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"token": middleware.GetToken(c),
	})
}

// logout revokes the presented token so it stops working immediately.
func (h *AuthHandler) logout(c *fiber.Ctx) error {
	log := logger.New("handlers").TraceFromContext(c.UserContext()).File("auth_handler").Function("logout")

	if err := h.authController.Logout(c.Context(), middleware.GetToken(c)); err != nil {
		_ = log.Err("Failed to revoke token", err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

func (h *AuthHandler) me(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Could not validate credentials",
		})
	}

	return c.JSON(user)
}
