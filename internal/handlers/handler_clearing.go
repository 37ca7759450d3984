package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/ifrs_ledger/internal/core/ports/services"
	"github.com/SscSPs/ifrs_ledger/internal/dto"
	"github.com/SscSPs/ifrs_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clearingHandler handles HTTP requests for clearing transactions against each other.
type clearingHandler struct {
	clearingService portssvc.ClearingSvc
	entityService   portssvc.EntitySvc
	labels          domain.Labels
}

func newClearingHandler(cs portssvc.ClearingSvc, es portssvc.EntitySvc, labels domain.Labels) *clearingHandler {
	return &clearingHandler{clearingService: cs, entityService: es, labels: labels}
}

// registerClearingRoutes registers clearing routes.
func registerClearingRoutes(rg *gin.RouterGroup, cs portssvc.ClearingSvc, es portssvc.EntitySvc, labels domain.Labels) {
	h := newClearingHandler(cs, es, labels)

	clearing := rg.Group("/clearing")
	{
		clearing.POST("/assignments", h.createAssignment)
		clearing.GET("/clearers/:type", h.getClearers)
	}
}

// createAssignment godoc
// @Summary Clear a transaction
// @Description Links a clearing transaction to a transaction it offsets
// @Tags clearing
// @Accept  json
// @Produce  json
// @Param   assignment body dto.CreateAssignmentRequest true "Assignment"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid amount or date"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 422 {object} dto.ErrorResponse "Transaction type cannot clear the other"
// @Security BearerAuth
// @Router /clearing/assignments [post]
func (h *clearingHandler) createAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	assignment, err := h.clearingService.Clear(c.Request.Context(), ec, req)
	if err != nil {
		handleServiceError(c, err, "Failed to clear transaction")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Assignment recorded", slog.String("assignment_id", assignment.AssignmentID))
	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(assignment))
}

// getClearers godoc
// @Summary Transaction types allowed to clear a type
// @Tags clearing
// @Produce  json
// @Param   type path string true "Transaction type code, e.g. IN"
// @Success 200 {object} dto.ClearersResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown transaction type"
// @Security BearerAuth
// @Router /clearing/clearers/{type} [get]
func (h *clearingHandler) getClearers(c *gin.Context) {
	t := domain.TransactionType(strings.ToUpper(c.Param("type")))
	if !t.IsValid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown transaction type " + string(t)})
		return
	}
	clearers := h.clearingService.Clearers(t)
	if clearers == nil {
		clearers = []domain.TransactionType{}
	}
	c.JSON(http.StatusOK, dto.ClearersResponse{
		TransactionType: t,
		Label:           h.labels.TransactionTypeLabel(t),
		Clearers:        clearers,
		ClearerLabels:   h.labels.TransactionTypeLabels(clearers),
	})
}
