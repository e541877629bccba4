package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler turns business events into journal entries.
type eventHandler struct {
	recorder portssvc.BusinessEventRecorderSvc
}

func registerEventRoutes(rg *gin.RouterGroup, recorder portssvc.BusinessEventRecorderSvc) {
	h := &eventHandler{recorder: recorder}

	events := rg.Group("/events")
	{
		events.POST("/payments", h.recordPayment)
		events.POST("/invoices", h.recordInvoice)
		events.POST("/expenses", h.recordExpense)
		events.POST("/revenues", h.recordRevenue)
	}
}

// recordPayment godoc
// @Summary Record a received payment
// @Description Debits cash (or bank, when configured) and credits rental revenue
// @Tags events
// @Accept json
// @Produce json
// @Param payment body dto.RecordPaymentRequest true "Payment"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /ledger/events/payments [post]
func (h *eventHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind payment request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.recorder.RecordPaymentReceived(c.Request.Context(), req.ToPayment())
	h.respond(c, logger.With(slog.String("payment_id", req.PaymentID)), entry, err, "record payment")
}

// recordInvoice godoc
// @Summary Record an issued invoice
// @Description Debits accounts receivable and credits rental revenue
// @Tags events
// @Accept json
// @Produce json
// @Param invoice body dto.RecordInvoiceRequest true "Invoice"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record invoice"
// @Security BearerAuth
// @Router /ledger/events/invoices [post]
func (h *eventHandler) recordInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind invoice request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.recorder.RecordInvoiceIssued(c.Request.Context(), req.ToInvoice())
	h.respond(c, logger.With(slog.String("invoice_id", req.InvoiceID)), entry, err, "record invoice")
}

// recordExpense godoc
// @Summary Record an expense
// @Description Debits the given expense account and credits cash
// @Tags events
// @Accept json
// @Produce json
// @Param expense body dto.RecordExpenseRequest true "Expense"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Security BearerAuth
// @Router /ledger/events/expenses [post]
func (h *eventHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind expense request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.recorder.RecordExpense(c.Request.Context(), req.Amount, req.Description, req.ExpenseAccount)
	h.respond(c, logger, entry, err, "record expense")
}

// recordRevenue godoc
// @Summary Record revenue
// @Description Debits cash and credits the given revenue account
// @Tags events
// @Accept json
// @Produce json
// @Param revenue body dto.RecordRevenueRequest true "Revenue"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record revenue"
// @Security BearerAuth
// @Router /ledger/events/revenues [post]
func (h *eventHandler) recordRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind revenue request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.recorder.RecordRevenue(c.Request.Context(), req.Amount, req.Description, req.RevenueAccount)
	h.respond(c, logger, entry, err, "record revenue")
}

func (h *eventHandler) respond(c *gin.Context, logger *slog.Logger, entry *domain.JournalEntry, err error, action string) {
	if err != nil {
		respondError(c, logger, err, action)
		return
	}
	logger.Info("Business event recorded", slog.String("document_number", entry.DocumentNumber))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}
