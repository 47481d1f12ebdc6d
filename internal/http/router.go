package httpx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pablobispo13/api-portifolio/internal/http/handlers"
	"github.com/pablobispo13/api-portifolio/internal/http/middleware"
)

// BuildRouter assembles the HTTP routes
func BuildRouter(ah *handlers.AuthHandlers, bh *handlers.BotHandlers, jwtmw *middleware.AuthMW, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	r.GET("/", func(c *gin.Context) { c.String(200, "Hey this is my API running 🥳") })
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)

	me := r.Group("/auth").Use(jwtmw.WithJWT())
	me.GET("/me", ah.Me)

	pb := r.Group("/pilotbot")
	// GET with a JSON body is what the existing bot clients send.
	pb.GET("/validate_token", bh.ValidateToken)
	pb.POST("/register-token", bh.RegisterToken)
	pb.POST("/update-phone", bh.UpdatePhone)
	pb.POST("/register-twilio-settings", bh.RegisterTwilioSettings)
	pb.POST("/update-twilio-settings", bh.UpdateTwilioSettings)
	pb.DELETE("/delete-user", bh.DeleteUser)
	pb.POST("/log", bh.AppendLog)
	pb.GET("/logs", bh.ListLogs)
	pb.POST("/send-test-message", bh.SendTestMessage)

	return r
}
