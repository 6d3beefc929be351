package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
)

// Register creates a new account and signs it in
// @Summary Register a new user
// @Description Creates a user account and returns an access token for it
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.TokenResponse "Account created"
// @Failure 400 {object} map[string]string "Email already registered or malformed body"
// @Failure 422 {object} map[string]string "Validation failed"
// @Router /auth/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	token, err := h.tokens.CreateAccessToken(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusCreated, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Login authenticates with email and password
// @Summary Log in
// @Description Exchanges form-encoded credentials (username holds the email) for an access token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email address"
// @Param password formData string true "Password"
// @Success 200 {object} models.TokenResponse "Access token"
// @Failure 401 {object} map[string]string "Incorrect email or password"
// @Router /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	// OAuth2 password flow: the email travels in the username field.
	email := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.authService.Authenticate(email, password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
		return
	}
	if user == nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}

	token, err := h.tokens.CreateAccessToken(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// GetMe returns the authenticated user
// @Summary Get current user
// @Description Returns the account behind the presented access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse "Current user"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /auth/me [get]
func (h *Handlers) GetMe(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, user.ToResponse())
}
