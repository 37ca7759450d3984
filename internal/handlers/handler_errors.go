package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/ifrs_ledger/internal/core/ports/services"
	"github.com/SscSPs/ifrs_ledger/internal/dto"
	"github.com/SscSPs/ifrs_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerRuleErrors are validation failures of a well formed request that
// breaks a ledger rule. They are reported as 422.
var ledgerRuleErrors = []error{
	apperrors.ErrMissingAccountType,
	apperrors.ErrInvalidCategoryType,
	apperrors.ErrHangingTransactions,
	apperrors.ErrUnclearableTransaction,
}

// statusFor maps a service error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	}
	for _, ruleErr := range ledgerRuleErrors {
		if errors.Is(err, ruleErr) {
			return http.StatusUnprocessableEntity
		}
	}
	if errors.Is(err, apperrors.ErrValidation) {
		return http.StatusBadRequest
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= 400 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// handleServiceError logs err and writes the matching JSON error response.
// Internal failures are reported with the generic message only.
func handleServiceError(c *gin.Context, err error, message string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(message, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: message})
		return
	}
	logger.Warn(message, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

// badRequest reports a request that failed binding.
func badRequest(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// entityContext resolves the authenticated user and entity into an EntityContext.
// On failure the response has been written and ok is false.
func entityContext(c *gin.Context, entities portssvc.EntitySvc) (domain.EntityContext, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return domain.EntityContext{}, false
	}
	entityID, ok := middleware.GetEntityIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "An entity must be selected"})
		return domain.EntityContext{}, false
	}
	ec, err := entities.ResolveContext(c.Request.Context(), entityID, userID)
	if err != nil {
		handleServiceError(c, err, "Failed to resolve entity")
		return domain.EntityContext{}, false
	}
	return ec, true
}
