package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"homestay-pricing/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// headers the booking flow cannot work without, whatever the environment lists
var (
	requiredAllowHeaders  = []string{"Authorization", "Content-Type", "Idempotency-Key", requestIDHeader}
	requiredExposeHeaders = []string{requestIDHeader, "Retry-After"}
)

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     withAll(cfg.AllowMethods, []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		AllowHeaders:     withAll(cfg.AllowHeaders, requiredAllowHeaders),
		ExposeHeaders:    withAll(cfg.ExposeHeaders, requiredExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	logger.Info("CORS middleware initialized",
		slog.Any("allow_origins", corsCfg.AllowOrigins),
		slog.Any("allow_headers", corsCfg.AllowHeaders))
	return cors.New(corsCfg)
}

func withAll(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
