package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/agrikarbon/carbon-marketplace/internal/domain/error"
	coreport "github.com/agrikarbon/carbon-marketplace/internal/domain/port/core"
	"github.com/agrikarbon/carbon-marketplace/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error onto the standard error envelope. The
// taxonomy order matters: validation detail first, then auth, ownership,
// conflicts and preconditions, with 500 as the fallback.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	var validation *domainerr.ValidationError
	if errors.As(err, &validation) {
		fields := make([]dto.FieldError, 0, len(validation.Fields))
		for _, f := range validation.Fields {
			fields = append(fields, dto.FieldError{Field: f.Field, Message: f.Message})
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Validation failed",
			Fields:  fields,
		})
		return
	}

	switch {
	case domainerr.IsValidationError(err), errors.Is(err, domainerr.ErrInvalidRole),
		errors.Is(err, domainerr.ErrRejectionReasonRequired):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	case errors.Is(err, domainerr.ErrPaymentSignature):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodePaymentSignature,
			Message: err.Error(),
		})
	case domainerr.IsUnauthorizedError(err):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	case domainerr.IsForbiddenError(err):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	case domainerr.IsConflictError(err):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	case domainerr.IsPreconditionError(err):
		c.JSON(http.StatusPreconditionFailed, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
	case domainerr.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.CodeNotFound,
			Message: err.Error(),
		})
	default:
		logger.Error("Unhandled error in API request", map[string]any{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.CodeInternalServer,
			Message: "Internal server error",
		})
	}
}

// respondBindError reports a malformed request body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeValidation,
		Message: "Invalid request format: " + err.Error(),
	})
}

// respondMissingSession reports an absent session identity. Reaching this
// after the auth middleware means the route is wired without it.
func respondMissingSession(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
		Message: "Missing session",
	})
}
