package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pablobispo13/api-portifolio/domain"
)

// AuthHandlers handles the email/password authentication HTTP requests
type AuthHandlers struct {
	regSvc domain.RegistrationService
	logger *zap.Logger
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(regSvc domain.RegistrationService, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{regSvc: regSvc, logger: logger}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity, err := h.regSvc.Register(c.Request.Context(), req.Email, req.Password, req.PhoneNumber)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "User registered successfully.",
			"user_id": identity.ID,
		},
	})
}

// Login handles user login and issues a session token
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.regSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": result.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
			"user_id":      result.Identity.ID,
		},
	})
}

// Me handles getting the authenticated identity's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	identityID, exists := c.Get("identity_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identity not found in context"})
		return
	}

	identity, err := h.regSvc.Profile(c.Request.Context(), identityID.(string))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": identityJSON(identity)})
}

// identityJSON renders an identity without its password hash
func identityJSON(identity *domain.Identity) gin.H {
	out := gin.H{
		"user_id":    identity.ID,
		"created_at": identity.CreatedAt,
		"updated_at": identity.UpdatedAt,
	}
	if identity.Email != nil {
		out["email"] = *identity.Email
	}
	if identity.PhoneNumber != nil {
		out["phone_number"] = *identity.PhoneNumber
	}
	if identity.Token != nil {
		out["token"] = *identity.Token
	}
	return out
}
