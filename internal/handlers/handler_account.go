package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler exposes the chart of accounts and per-account views.
type accountHandler struct {
	chart     *domain.ChartOfAccounts
	reporting portssvc.ReportingService
	entries   portssvc.LedgerEntryReaderSvc
	now       func() time.Time
}

func newAccountHandler(chart *domain.ChartOfAccounts, reporting portssvc.ReportingService, entries portssvc.LedgerEntryReaderSvc) *accountHandler {
	return &accountHandler{chart: chart, reporting: reporting, entries: entries, now: time.Now}
}

func registerAccountRoutes(rg *gin.RouterGroup, chart *domain.ChartOfAccounts, reporting portssvc.ReportingService, entries portssvc.LedgerEntryReaderSvc) {
	h := newAccountHandler(chart, reporting, entries)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountType/balance", h.getAccountBalance)
		accounts.GET("/:accountType/transactions", h.getAccountTransactions)
	}
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /ledger/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToAccountResponses(h.chart.Definitions()))
}

// getAccountBalance godoc
// @Summary Get an account balance
// @Description Lifetime debits minus credits for one account
// @Tags accounts
// @Produce json
// @Param accountType path string true "Account type, e.g. CASH_ASSET"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} map[string]string "Unknown account type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to calculate account balance"
// @Security BearerAuth
// @Router /ledger/accounts/{accountType}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountType := domain.AccountType(c.Param("accountType"))
	logger = logger.With(slog.String("account_type", string(accountType)))

	def, err := h.chart.Lookup(accountType)
	if err != nil {
		respondError(c, logger, err, "calculate account balance")
		return
	}

	balance, err := h.reporting.AccountBalance(c.Request.Context(), accountType)
	if err != nil {
		respondError(c, logger, err, "calculate account balance")
		return
	}

	c.JSON(http.StatusOK, dto.AccountBalanceResponse{
		AccountType: string(def.Type),
		AccountCode: def.Code,
		AccountName: def.Name,
		Balance:     dto.NewAmount(balance),
	})
}

// getAccountTransactions godoc
// @Summary List the rows of one account
// @Tags accounts
// @Produce json
// @Param accountType path string true "Account type, e.g. CASH_ASSET"
// @Param from query string false "Start date (RFC3339 or YYYY-MM-DD)" default(first day of the month of to)
// @Param to query string false "End date (RFC3339 or YYYY-MM-DD)" default(now)
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list account transactions"
// @Security BearerAuth
// @Router /ledger/accounts/{accountType}/transactions [get]
func (h *accountHandler) getAccountTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountType := domain.AccountType(c.Param("accountType"))
	logger = logger.With(slog.String("account_type", string(accountType)))

	from, to, err := parsePeriod(c, h.now())
	if err != nil {
		respondError(c, logger, err, "list account transactions")
		return
	}

	entries, err := h.entries.AccountTransactions(c.Request.Context(), accountType, from, to)
	if err != nil {
		respondError(c, logger, err, "list account transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponses(entries))
}
