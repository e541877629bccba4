package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              time.Now,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/income-statement", h.getIncomeStatement)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/cash-flow", h.getCashFlow)
		reportingGroup.GET("/summary", h.getFinancialSummary)
	}
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Lifetime debit and credit totals per account
// @Tags reports
// @Produce json
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to generate trial balance report")

	tb, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "generate trial balance report")
		return
	}

	logger.Info("Trial balance report generated successfully", slog.Int("row_count", len(tb.Rows)))
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

// getIncomeStatement godoc
// @Summary Generate income statement
// @Description Revenue, expenses and net profit for a period
// @Tags reports
// @Produce json
// @Param from query string false "Start date (RFC3339 or YYYY-MM-DD)" default(first day of the month of to)
// @Param to query string false "End date (RFC3339 or YYYY-MM-DD)" default(now)
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parsePeriod(c, h.now())
	if err != nil {
		respondError(c, logger, err, "generate income statement")
		return
	}
	logger = logger.With(slog.Time("from", from), slog.Time("to", to))

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "generate income statement")
		return
	}

	logger.Info("Income statement generated successfully",
		slog.Int("revenue_accounts", len(report.Revenues)),
		slog.Int("expense_accounts", len(report.Expenses)))
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(report))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Assets, liabilities and equity as of a date
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (RFC3339 or YYYY-MM-DD)" default(now)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf := h.now().UTC()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := parseDate(raw, true)
		if err != nil {
			respondError(c, logger, err, "generate balance sheet report")
			return
		}
		asOf = parsed
	}
	logger = logger.With(slog.Time("asOf", asOf))

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "generate balance sheet report")
		return
	}

	logger.Info("Balance sheet report generated successfully")
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getCashFlow godoc
// @Summary Generate cash flow statement
// @Description Cash and bank movements for a period
// @Tags reports
// @Produce json
// @Param from query string false "Start date (RFC3339 or YYYY-MM-DD)" default(first day of the month of to)
// @Param to query string false "End date (RFC3339 or YYYY-MM-DD)" default(now)
// @Success 200 {object} dto.CashFlowStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parsePeriod(c, h.now())
	if err != nil {
		respondError(c, logger, err, "generate cash flow statement")
		return
	}

	report, err := h.reportingService.CashFlowStatement(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "generate cash flow statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashFlowStatementResponse(report))
}

// getFinancialSummary godoc
// @Summary Generate all financial statements
// @Description Trial balance, income statement, balance sheet and cash flow for one period
// @Tags reports
// @Produce json
// @Param from query string false "Start date (RFC3339 or YYYY-MM-DD)" default(first day of the month of to)
// @Param to query string false "End date (RFC3339 or YYYY-MM-DD)" default(now)
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getFinancialSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parsePeriod(c, h.now())
	if err != nil {
		respondError(c, logger, err, "generate financial summary")
		return
	}

	summary, err := h.reportingService.FinancialSummary(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "generate financial summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary))
}
