package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"socialdots/internal/infrastructure/config"
	"socialdots/pkg"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const AdminKeyHeader = "X-Admin-Key"

// contentSecurityPolicy allows the Google calendar embeds, analytics and the Mercado Pago
// checkout scripts next to our own assets.
const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' 'unsafe-inline' https://www.googletagmanager.com https://sdk.mercadopago.com; " +
	"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
	"font-src 'self' https://fonts.gstatic.com; " +
	"img-src 'self' data: https:; " +
	"frame-src https://calendar.google.com https://www.google.com https://www.mercadopago.com; " +
	"connect-src 'self' https://www.google-analytics.com"

// RateLimit throttles requests per client address. It is a no-op unless the rate limit
// is configured.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	if cfg.RequestsPerSecond == nil || cfg.Burst == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	lmt := tollbooth.NewLimiter(*cfg.RequestsPerSecond, &limiter.ExpirableOptions{
		DefaultExpirationTTL: cfg.TTL,
	})
	lmt.SetBurst(*cfg.Burst)
	return func(c *gin.Context) {
		if httpError := tollbooth.LimitByRequest(lmt, c.Writer, c.Request); httpError != nil {
			appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests", httpError.StatusCode)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

// AdminKey guards the admin API with the shared key from ADMIN_API_KEY.
func AdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		conf, err := config.Fetch()
		if err != nil || conf.Server.AdminAPIKey == "" {
			appErr := pkg.NewDomainErrorSimple("ADMIN_DISABLED", "Admin API is not configured", http.StatusServiceUnavailable)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		key := c.GetHeader(AdminKeyHeader)
		if key == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing admin key", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if !secureCompare(conf.Server.AdminAPIKey, key) {
			logrus.WithField("client_ip", c.ClientIP()).Warn("[admin][middleware] invalid admin key")
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid admin key", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Content-Security-Policy", contentSecurityPolicy)
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// RequestLogger logs one line per request through logrus.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
		})
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Error("[http] request")
		case status >= http.StatusBadRequest:
			entry.Warn("[http] request")
		default:
			entry.Info("[http] request")
		}
	}
}

func secureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
