package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pablobispo13/api-portifolio/internal/config"
	httpx "github.com/pablobispo13/api-portifolio/internal/http"
	"github.com/pablobispo13/api-portifolio/internal/http/handlers"
	"github.com/pablobispo13/api-portifolio/internal/http/middleware"
	"github.com/pablobispo13/api-portifolio/internal/infrastructure/auth"
	"github.com/pablobispo13/api-portifolio/internal/infrastructure/database"
	"github.com/pablobispo13/api-portifolio/internal/infrastructure/notifications"
	"github.com/pablobispo13/api-portifolio/internal/infrastructure/repositories"
	"github.com/pablobispo13/api-portifolio/internal/services"
)

// Run wires the dependencies and serves until the listener fails
func Run(cfg *config.Config) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	passwordSvc := auth.NewPasswordService(cfg.BcryptCost)
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer)
	messenger := notifications.NewTwilioMessenger()

	identityRepo := repositories.NewIdentityRepository(gdb)
	settingsRepo := repositories.NewTwilioSettingsRepository(gdb)
	logRepo := repositories.NewActivityLogRepository(gdb)

	regSvc := services.NewRegistrationService(
		identityRepo, settingsRepo, logRepo,
		passwordSvc, tokenSvc, messenger,
		logger,
	)

	ah := handlers.NewAuthHandlers(regSvc, logger)
	bh := handlers.NewBotHandlers(regSvc, logger)
	jwtMW := middleware.NewAuthMW(tokenSvc)

	r := httpx.BuildRouter(ah, bh, jwtMW, logger)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}
