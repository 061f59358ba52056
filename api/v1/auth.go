package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pss-admin/dto"
	"github.com/pss-admin/middleware"
	"github.com/pss-admin/services"
)

// AuthController handles admin login and logout
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Status tells the UI whether deletions need a login
func (ac *AuthController) Status(c *gin.Context) {
	enabled := ac.auth != nil && ac.auth.Enabled()
	authenticated := !enabled
	if enabled {
		if token, err := c.Cookie(middleware.AccessTokenCookie); err == nil {
			_, err := ac.auth.ValidateToken(token)
			authenticated = err == nil
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"enabled":       enabled,
		"authenticated": authenticated,
	})
}

// Login handles admin authentication
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest

	// Parse request body
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if ac.auth == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrAuthDisabled.Error()})
		return
	}

	// Authenticate
	authResponse, err := ac.auth.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrAuthDisabled) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed"})
		return
	}

	// Set token as HttpOnly cookie for the browser UI
	maxAge := int(time.Until(authResponse.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, authResponse.Token, maxAge, "/", "", isSecure(c), true)

	// Also return token in response body for clients that prefer Bearer auth
	c.JSON(http.StatusOK, authResponse)
}

// Logout clears the session cookie
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", isSecure(c), true)

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

func isSecure(c *gin.Context) bool {
	return c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https"
}
