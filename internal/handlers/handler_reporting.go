package handlers

import (
	"net/http"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/ifrs_ledger/internal/core/ports/services"
	"github.com/SscSPs/ifrs_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for aggregated balances and statements.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	periodService    portssvc.PeriodSvc
	entityService    portssvc.EntitySvc
}

func newReportingHandler(rs portssvc.ReportingService, ps portssvc.PeriodSvc, es portssvc.EntitySvc) *reportingHandler {
	return &reportingHandler{reportingService: rs, periodService: ps, entityService: es}
}

// registerReportingRoutes registers report and period routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingService, ps portssvc.PeriodSvc, es portssvc.EntitySvc) {
	h := newReportingHandler(rs, ps, es)

	reports := rg.Group("/reports")
	{
		reports.GET("/sections", h.getSectionBalances)
		reports.GET("/movement", h.getMovement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/income-statement", h.getIncomeStatement)
	}
	periods := rg.Group("/periods")
	{
		periods.GET("/current", h.getCurrentPeriod)
		periods.GET("/:year", h.getPeriodByYear)
	}
}

// getSectionBalances godoc
// @Summary Balances of a set of account types
// @Description Accounts of the given types grouped by category, with opening, current and closing balances
// @Tags reports
// @Produce  json
// @Param   types query []string true "Account types" collectionFormat(multi)
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.SectionBalances
// @Failure 400 {object} dto.ErrorResponse "Invalid types or date range"
// @Failure 404 {object} dto.ErrorResponse "Reporting period not found"
// @Security BearerAuth
// @Router /reports/sections [get]
func (h *reportingHandler) getSectionBalances(c *gin.Context) {
	var params dto.SectionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	balances, err := h.reportingService.SectionBalances(c.Request.Context(), ec, params.AccountTypes(), params.StartDate, params.EndDate)
	if err != nil {
		handleServiceError(c, err, "Failed to aggregate balances")
		return
	}
	c.JSON(http.StatusOK, balances)
}

// getMovement godoc
// @Summary Movement of a set of account types
// @Description Change of the types' total between startDate and endDate, credit positive. Defaults to the income statement types.
// @Tags reports
// @Produce  json
// @Param   types query []string false "Account types" collectionFormat(multi)
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.MovementResponse
// @Security BearerAuth
// @Router /reports/movement [get]
func (h *reportingHandler) getMovement(c *gin.Context) {
	var params dto.SectionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	types := params.AccountTypes()
	if len(types) == 0 {
		types = domain.IncomeStatementTypes()
	}
	movement, err := h.reportingService.Movement(c.Request.Context(), ec, types, params.StartDate, params.EndDate)
	if err != nil {
		handleServiceError(c, err, "Failed to compute movement")
		return
	}
	c.JSON(http.StatusOK, dto.MovementResponse{
		Types:     types,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Movement:  movement,
	})
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Tags reports
// @Produce  json
// @Param   endDate query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} domain.BalanceSheet
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	sheet, err := h.reportingService.BalanceSheet(c.Request.Context(), ec, params.EndDate)
	if err != nil {
		handleServiceError(c, err, "Failed to build balance sheet")
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// getIncomeStatement godoc
// @Summary Income statement
// @Tags reports
// @Produce  json
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.IncomeStatement
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	statement, err := h.reportingService.IncomeStatement(c.Request.Context(), ec, params.StartDate, params.EndDate)
	if err != nil {
		handleServiceError(c, err, "Failed to build income statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}

// getCurrentPeriod godoc
// @Summary Current reporting period
// @Tags periods
// @Produce  json
// @Success 200 {object} domain.ReportingPeriod
// @Failure 404 {object} dto.ErrorResponse "Reporting period not found"
// @Security BearerAuth
// @Router /periods/current [get]
func (h *reportingHandler) getCurrentPeriod(c *gin.Context) {
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	period, err := h.periodService.CurrentPeriod(c.Request.Context(), ec)
	if err != nil {
		handleServiceError(c, err, "Failed to resolve reporting period")
		return
	}
	c.JSON(http.StatusOK, period)
}

// getPeriodByYear godoc
// @Summary Reporting period of a fiscal year
// @Tags periods
// @Produce  json
// @Param   year path int true "Fiscal year"
// @Success 200 {object} domain.ReportingPeriod
// @Failure 404 {object} dto.ErrorResponse "Reporting period not found"
// @Security BearerAuth
// @Router /periods/{year} [get]
func (h *reportingHandler) getPeriodByYear(c *gin.Context) {
	var uri struct {
		Year int `uri:"year" binding:"required,min=1900,max=9999"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, err)
		return
	}
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	period, err := h.periodService.PeriodByYear(c.Request.Context(), ec, uri.Year)
	if err != nil {
		handleServiceError(c, err, "Failed to resolve reporting period")
		return
	}
	c.JSON(http.StatusOK, period)
}
