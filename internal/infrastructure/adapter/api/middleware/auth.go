package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	domainerr "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/domain/port/gateway"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the auth middleware and read by handlers
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// Auth middleware validates the bearer token and stores the session identity
// on the request context
func Auth(tokens gateway.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Missing bearer token",
			})
			return
		}

		session, err := tokens.Parse(raw)
		if err != nil {
			message := "Invalid session token"
			if errors.Is(err, domainerr.ErrTokenExpired) {
				message = "Session token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: message,
			})
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextRole, session.Role)
		c.Next()
	}
}

// SessionUserID returns the authenticated user id stored by Auth
func SessionUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// SessionRole returns the authenticated role stored by Auth
func SessionRole(c *gin.Context) (entity.Role, bool) {
	v, ok := c.Get(ContextRole)
	if !ok {
		return "", false
	}
	role, ok := v.(entity.Role)
	return role, ok
}
