package middleware

import (
	"net/http"

	"github.com/agrikarbon/carbon-marketplace/internal/domain/entity"
	domainerr "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RequireRoles rejects authenticated callers whose role is not in the allowed
// set. Must run after Auth.
func RequireRoles(allowed ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := SessionRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Missing session",
			})
			return
		}

		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
			Message: "Insufficient role for this resource",
		})
	}
}
