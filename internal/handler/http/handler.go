package http

import (
	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	metrics *httpMetrics
	limiter *limiterCache[string]

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  newHTTPMetrics(),
		limiter:  newLimiterCache[string](cfg.LoginRateLimit, cfg.LoginRateBurst),
		logger:   logger,
	}
}
