package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/ifrs_ledger/internal/core/ports/services"
	"github.com/SscSPs/ifrs_ledger/internal/dto"
	"github.com/SscSPs/ifrs_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	entityService  portssvc.EntitySvc
	labels         domain.Labels
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, es portssvc.EntitySvc, labels domain.Labels) *accountHandler {
	return &accountHandler{
		accountService: as,
		entityService:  es,
		labels:         labels,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountSvcFacade, es portssvc.EntitySvc, labels domain.Labels) {
	h := newAccountHandler(as, es, labels)

	rg.GET("/account-types", h.listAccountTypes)
	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.DELETE("/:id", h.deleteAccount)
		accounts.GET("/:id/opening-balance", h.getOpeningBalance)
		accounts.GET("/:id/closing-balance", h.getClosingBalance)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account in the selected entity and assigns its code
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 422 {object} dto.ErrorResponse "Category type does not match account type"
// @Failure 500 {object} dto.ErrorResponse "Failed to create account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create account", slog.String("account_name", req.Name), slog.String("account_type", string(req.AccountType)))

	account, err := h.accountService.CreateAccount(c.Request.Context(), ec, req)
	if err != nil {
		handleServiceError(c, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID), slog.Int("code", account.Code))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account, h.labels))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	account, err := h.accountService.GetAccountByID(c.Request.Context(), ec, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account, h.labels))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the active accounts of the selected entity ordered by code
// @Tags accounts
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	accounts, err := h.accountService.ListAccounts(c.Request.Context(), ec, params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.ToListAccountResponse(accounts, h.labels),
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Soft deletes an account whose closing balance is zero
// @Tags accounts
// @Param   id path string true "Account ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 422 {object} dto.ErrorResponse "Account has hanging transactions"
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	accountID := c.Param("id")
	if err := h.accountService.DeleteAccount(c.Request.Context(), ec, accountID); err != nil {
		handleServiceError(c, err, "Failed to delete account")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account deleted", slog.String("account_id", accountID))
	c.Status(http.StatusNoContent)
}

// getOpeningBalance godoc
// @Summary Opening balance of an account
// @Description Sum of the account's balances for a fiscal year, in reporting currency, debit positive
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   year query int false "Fiscal year, defaults to the current one"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 404 {object} dto.ErrorResponse "Account or reporting period not found"
// @Security BearerAuth
// @Router /accounts/{id}/opening-balance [get]
func (h *accountHandler) getOpeningBalance(c *gin.Context) {
	var params dto.AccountBalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	accountID := c.Param("id")
	balance, err := h.accountService.OpeningBalance(c.Request.Context(), ec, accountID, params.Year)
	if err != nil {
		handleServiceError(c, err, "Failed to compute opening balance")
		return
	}
	c.JSON(http.StatusOK, dto.AccountBalanceResponse{AccountID: accountID, Kind: "opening", Balance: balance})
}

// getClosingBalance godoc
// @Summary Closing balance of an account
// @Description Opening balance plus ledger movement between startDate and endDate
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.AccountBalanceResponse
// @Security BearerAuth
// @Router /accounts/{id}/closing-balance [get]
func (h *accountHandler) getClosingBalance(c *gin.Context) {
	var params dto.AccountBalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	accountID := c.Param("id")
	balance, err := h.accountService.ClosingBalance(c.Request.Context(), ec, accountID, params.StartDate, params.EndDate)
	if err != nil {
		handleServiceError(c, err, "Failed to compute closing balance")
		return
	}
	c.JSON(http.StatusOK, dto.AccountBalanceResponse{AccountID: accountID, Kind: "closing", Balance: balance})
}

// listAccountTypes godoc
// @Summary List account types
// @Description The chart's account types with labels, base codes and normal balance sides
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountTypeResponse
// @Security BearerAuth
// @Router /account-types [get]
func (h *accountHandler) listAccountTypes(c *gin.Context) {
	labels, err := h.accountService.GetTypes(domain.AccountTypes)
	if err != nil {
		handleServiceError(c, err, "Failed to list account types")
		return
	}
	out := make([]dto.AccountTypeResponse, len(domain.AccountTypes))
	for i, t := range domain.AccountTypes {
		base, _ := h.labels.BaseCode(t)
		out[i] = dto.AccountTypeResponse{
			AccountType:   t,
			Label:         labels[i],
			BaseCode:      base,
			NormalBalance: t.NormalBalance(),
		}
	}
	c.JSON(http.StatusOK, out)
}
