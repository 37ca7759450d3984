package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/ifrs_ledger/internal/core/ports/services"
	"github.com/SscSPs/ifrs_ledger/internal/dto"
	"github.com/SscSPs/ifrs_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies and their rates.
type currencyHandler struct {
	currencyService     portssvc.CurrencySvcFacade
	exchangeRateService portssvc.ExchangeRateSvcFacade
	entityService       portssvc.EntitySvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade, ers portssvc.ExchangeRateSvcFacade, es portssvc.EntitySvc) *currencyHandler {
	return &currencyHandler{
		currencyService:     cs,
		exchangeRateService: ers,
		entityService:       es,
	}
}

// registerCurrencyRoutes registers routes related to currencies and exchange rates.
func registerCurrencyRoutes(rg *gin.RouterGroup, cs portssvc.CurrencySvcFacade, ers portssvc.ExchangeRateSvcFacade, es portssvc.EntitySvc) {
	h := newCurrencyHandler(cs, ers, es)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
	rates := rg.Group("/exchange-rates")
	{
		rates.POST("", h.createExchangeRate)
		rates.GET("/:code", h.getEffectiveRate)
	}
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Adds a currency to the selected entity
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Currency code already exists"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	currency, err := h.currencyService.CreateCurrency(c.Request.Context(), ec, req)
	if err != nil {
		handleServiceError(c, err, "Failed to create currency")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Currency created", slog.String("currency_code", currency.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), ec, strings.ToUpper(c.Param("code")))
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List currencies
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), ec)
	if err != nil {
		handleServiceError(c, err, "Failed to list currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// createExchangeRate godoc
// @Summary Record an exchange rate
// @Description Records how many reporting currency units one unit of a currency is worth from a date
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange rate"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *currencyHandler) createExchangeRate(c *gin.Context) {
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	rate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), ec, req)
	if err != nil {
		handleServiceError(c, err, "Failed to create exchange rate")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// getEffectiveRate godoc
// @Summary Effective exchange rate
// @Description Returns the latest rate of a currency valid on asOf (defaults to today)
// @Tags exchange-rates
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)"
// @Param   asOf query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 404 {object} dto.ErrorResponse "No rate found"
// @Security BearerAuth
// @Router /exchange-rates/{code} [get]
func (h *currencyHandler) getEffectiveRate(c *gin.Context) {
	var params dto.ExchangeRateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	ec, ok := entityContext(c, h.entityService)
	if !ok {
		return
	}
	asOf := ec.Now
	if params.AsOf != nil {
		asOf = *params.AsOf
	}
	rate, err := h.exchangeRateService.GetEffectiveRate(c.Request.Context(), ec, strings.ToUpper(c.Param("code")), asOf)
	if err != nil {
		handleServiceError(c, err, "Failed to retrieve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}
