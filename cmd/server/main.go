package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/youruser/logostamp/internal/api"
	"github.com/youruser/logostamp/internal/config"
	"github.com/youruser/logostamp/internal/logging"
)

func main() {
	dotenvErr := godotenv.Load()
	cfg := config.Load()

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if dotenvErr != nil {
		logger.Debug("no .env file found, using environment variables")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(api.RequestLogger(logger), gin.Recovery())
	r.MaxMultipartMemory = int64(cfg.HTTP.MaxUploadMB) << 20

	h := &api.Handler{
		Client:      &http.Client{Timeout: cfg.HTTP.DownloadTimeout},
		JPEGQuality: cfg.Output.JPEGQuality,
		MaxBytes:    int64(cfg.HTTP.MaxUploadMB) << 20,
	}
	api.RegisterRoutes(r, h)

	logger.Info("starting server", zap.String("addr", "http://localhost:"+cfg.HTTP.Port))
	if err := r.Run(":" + cfg.HTTP.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
