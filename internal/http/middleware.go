package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"projecthub/internal/apperr"
	"projecthub/internal/domain"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	userKey         = "user"
	bearerPrefix    = "Bearer "
)

type userCtxKey struct{}

// WithUser binds user to ctx for the remainder of a request.
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// UserFromContext returns the caller bound by the auth gate, if any.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(domain.User)
	return user, ok
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", requestIDHeader)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		entry := logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency":    time.Since(start).String(),
		})
		if user, ok := UserFromContext(c.Request.Context()); ok {
			entry = entry.WithField("user", user.Username)
		}
		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}
	}
}

// authGate binds the caller named by a bearer token. Requests without a
// bearer header pass through anonymously; a presented but invalid token is
// rejected outright.
func (h *Handler) authGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			abortWithError(c, h.logger, apperr.ErrInvalidToken)
			return
		}

		user, err := h.users.ResolveToken(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, h.logger, err)
			return
		}

		c.Set(userKey, *user)
		c.Request = c.Request.WithContext(WithUser(c.Request.Context(), *user))
		c.Next()
	}
}

// requireUser rejects requests that reach it without a bound caller.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(userKey); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error: apperr.ErrMissingToken.Message,
				Code:  apperr.ErrMissingToken.Kind,
			})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) domain.User {
	return c.MustGet(userKey).(domain.User)
}
