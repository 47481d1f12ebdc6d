package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pablobispo13/api-portifolio/domain"
)

// BotHandlers handles the bot registration and credential settings HTTP
// requests. Responses stay flat (no data envelope) to keep the wire format
// the existing bot clients expect.
type BotHandlers struct {
	regSvc domain.RegistrationService
	logger *zap.Logger
}

// NewBotHandlers creates new bot handlers
func NewBotHandlers(regSvc domain.RegistrationService, logger *zap.Logger) *BotHandlers {
	return &BotHandlers{regSvc: regSvc, logger: logger}
}

// ValidateTokenRequest represents a token validation request
type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// RegisterTokenRequest represents a bot registration request
type RegisterTokenRequest struct {
	Token       string `json:"token" binding:"required"`
	UserID      string `json:"user_id" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// UpdatePhoneRequest represents a phone update request
type UpdatePhoneRequest struct {
	Token       string `json:"token" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// RegisterTwilioSettingsRequest represents a full credential registration
type RegisterTwilioSettingsRequest struct {
	Token      string `json:"token" binding:"required"`
	AccountSID string `json:"accountSid" binding:"required"`
	AuthToken  string `json:"authToken" binding:"required"`
	FromNumber string `json:"fromNumber" binding:"required"`
	ToNumber   string `json:"toNumber" binding:"required"`
}

// UpdateTwilioSettingsRequest represents a partial credential update; only
// the token is mandatory
type UpdateTwilioSettingsRequest struct {
	Token      string  `json:"token" binding:"required"`
	AccountSID *string `json:"accountSid"`
	AuthToken  *string `json:"authToken"`
	FromNumber *string `json:"fromNumber"`
	ToNumber   *string `json:"toNumber"`
}

// DeleteUserRequest represents an identity deletion request
type DeleteUserRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// AppendLogRequest represents an activity log append request
type AppendLogRequest struct {
	Timestamp string `json:"timestamp" binding:"required"`
	LogType   string `json:"logType" binding:"required"`
	Message   string `json:"message" binding:"required"`
	UserID    string `json:"user_id" binding:"required"`
}

// SendTestMessageRequest represents a test message request
type SendTestMessageRequest struct {
	Token   string `json:"token" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ValidateToken handles session token validation. Crypto failures answer 401
// with valid:false; a token whose identity is gone answers 200 valid:false.
func (h *BotHandlers) ValidateToken(c *gin.Context) {
	var req ValidateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validation, err := h.regSvc.ValidateToken(c.Request.Context(), req.Token)
	if err != nil {
		if domain.IsAuth(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
			return
		}
		respondError(c, h.logger, err)
		return
	}

	if !validation.Valid {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "user_id": validation.IdentityID})
}

// RegisterToken handles bot registration with an externally issued token
func (h *BotHandlers) RegisterToken(c *gin.Context) {
	var req RegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token, user_id and phone_number are required"})
		return
	}

	identity, err := h.regSvc.RegisterToken(c.Request.Context(), req.Token, req.UserID, req.PhoneNumber)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Bot registered successfully.",
		"user":    identityJSON(identity),
	})
}

// UpdatePhone handles updating the phone number bound to a bot token
func (h *BotHandlers) UpdatePhone(c *gin.Context) {
	var req UpdatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token and phone_number are required"})
		return
	}

	identity, err := h.regSvc.UpdatePhone(c.Request.Context(), req.Token, req.PhoneNumber)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Phone number updated successfully.",
		"user":    identityJSON(identity),
	})
}

// RegisterTwilioSettings handles the credential upsert for an identity
func (h *BotHandlers) RegisterTwilioSettings(c *gin.Context) {
	var req RegisterTwilioSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}

	settings, err := h.regSvc.RegisterTwilioSettings(c.Request.Context(), req.Token, &domain.TwilioSettings{
		AccountSID: req.AccountSID,
		AuthToken:  req.AuthToken,
		FromNumber: req.FromNumber,
		ToNumber:   req.ToNumber,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Twilio settings registered successfully.",
		"settings": settingsJSON(settings),
	})
}

// UpdateTwilioSettings handles a partial credential update; fails when the
// identity was never provisioned
func (h *BotHandlers) UpdateTwilioSettings(c *gin.Context) {
	var req UpdateTwilioSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	settings, err := h.regSvc.UpdateTwilioSettings(c.Request.Context(), req.Token, &domain.TwilioSettingsPatch{
		AccountSID: req.AccountSID,
		AuthToken:  req.AuthToken,
		FromNumber: req.FromNumber,
		ToNumber:   req.ToNumber,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Twilio settings updated successfully.",
		"settings": settingsJSON(settings),
	})
}

// DeleteUser handles deletion of an identity, cascading its Twilio settings
func (h *BotHandlers) DeleteUser(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone_number is required"})
		return
	}

	if err := h.regSvc.DeleteIdentity(c.Request.Context(), req.PhoneNumber); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User and related settings deleted successfully."})
}

// AppendLog handles appending one activity log entry
func (h *BotHandlers) AppendLog(c *gin.Context) {
	var req AppendLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.regSvc.AppendLog(c.Request.Context(), req.UserID, req.LogType, req.Message, req.Timestamp); err != nil {
		if domain.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		h.logger.Error("log append failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListLogs handles listing the activity log for an identity, newest first
func (h *BotHandlers) ListLogs(c *gin.Context) {
	userID := c.Query("user_id")

	entries, err := h.regSvc.ListLogs(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	logs := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, gin.H{
			"timestamp": e.Timestamp,
			"logType":   e.LogType,
			"message":   e.Message,
			"user_id":   e.IdentityID,
		})
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// SendTestMessage sends a message through the identity's stored credentials
func (h *BotHandlers) SendTestMessage(c *gin.Context) {
	var req SendTestMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token and message are required"})
		return
	}

	if err := h.regSvc.SendTestMessage(c.Request.Context(), req.Token, req.Message); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Test message sent successfully."})
}

// settingsJSON renders credential settings; the auth secret is echoed back
// as stored, matching the provisioning flow the clients rely on
func settingsJSON(settings *domain.TwilioSettings) gin.H {
	return gin.H{
		"user_id":    settings.IdentityID,
		"accountSid": settings.AccountSID,
		"authToken":  settings.AuthToken,
		"fromNumber": settings.FromNumber,
		"toNumber":   settings.ToNumber,
	}
}
