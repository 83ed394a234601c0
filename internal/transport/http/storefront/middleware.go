package storefront

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/auth"
)

const (
	requestIDKey = "request_id"
	identityKey  = "client_identity"
)

// RequestLogger injects a request id and logs every request after it completes.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()[:8]
		}
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if who, ok := identity(c); ok {
			fields = append(fields, zap.String("client_id", who.ID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.Error("http request", fields...)
		case status >= 400:
			logger.Warn("http request", fields...)
		default:
			logger.Info("http request", fields...)
		}
	}
}

// Authenticate requires a verified bearer token and stores the caller's
// client identity on the context.
func Authenticate(v *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.FromHeader(c.GetHeader("Authorization"))
		if err != nil {
			failWith(c, err)
			return
		}
		claims, err := v.Verify(token)
		if err != nil {
			failWith(c, auth.ErrInvalidToken)
			return
		}
		who, err := claims.Identity()
		if err != nil {
			failWith(c, auth.ErrInvalidToken)
			return
		}

		c.Set(identityKey, who)
		c.Next()
	}
}

func identity(c *gin.Context) (domain.ClientIdentity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.ClientIdentity{}, false
	}
	who, ok := v.(domain.ClientIdentity)
	return who, ok
}

// mustIdentity is used behind Authenticate only.
func mustIdentity(c *gin.Context) domain.ClientIdentity {
	who, _ := identity(c)
	return who
}
