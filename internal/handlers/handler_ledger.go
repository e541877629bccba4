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

// ledgerHandler serves raw ledger rows and reassembled journal entries.
type ledgerHandler struct {
	posting portssvc.PostingSvc
	entries portssvc.LedgerEntrySvcFacade
}

func newLedgerHandler(posting portssvc.PostingSvc, entries portssvc.LedgerEntrySvcFacade) *ledgerHandler {
	return &ledgerHandler{posting: posting, entries: entries}
}

// registerLedgerRoutes registers ledger entry and journal routes. Writes need the admin key.
func registerLedgerRoutes(rg *gin.RouterGroup, posting portssvc.PostingSvc, entries portssvc.LedgerEntrySvcFacade, adminKeyHash string) {
	h := newLedgerHandler(posting, entries)
	admin := middleware.RequireAdminKey(adminKeyHash)

	entryRoutes := rg.Group("/entries")
	{
		entryRoutes.POST("", admin, h.createJournalEntry)
		entryRoutes.GET("", h.listEntries)
		entryRoutes.GET("/:entryID", h.getEntry)
		entryRoutes.DELETE("/:entryID", admin, h.deleteEntry)
	}
	rg.GET("/journals/:documentNumber", h.getJournalEntry)
}

// createJournalEntry godoc
// @Summary Post a journal entry
// @Description Posts a balanced debit/credit pair. Requires the admin key.
// @Tags ledger
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Param X-Admin-Key header string true "Administrative API key"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin key missing or invalid"
// @Failure 500 {object} map[string]string "Failed to post journal entry"
// @Security BearerAuth
// @Router /ledger/entries [post]
func (h *ledgerHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind journal entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.posting.Post(c.Request.Context(), req.ToPostingRequest())
	if err != nil {
		respondError(c, logger, err, "post journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List ledger rows
// @Description Lists ledger rows ordered by transaction date, filtered and paginated with nextToken
// @Tags ledger
// @Produce json
// @Param from query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Param transactionType query []string false "Transaction types" collectionFormat(multi)
// @Param accountType query []string false "Account types" collectionFormat(multi)
// @Param reconciled query bool false "Reconciliation status"
// @Param referenceType query string false "Business reference type, e.g. PAYMENT"
// @Param referenceID query string false "Business reference id"
// @Param limit query int false "Page size (max 100)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list ledger entries"
// @Security BearerAuth
// @Router /ledger/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ListEntriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind list entries query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, err := parseOptionalDate(query.From, false)
	if err != nil {
		respondError(c, logger, err, "list ledger entries")
		return
	}
	to, err := parseOptionalDate(query.To, true)
	if err != nil {
		respondError(c, logger, err, "list ledger entries")
		return
	}

	filter := domain.EntryFilter{
		From:          from,
		To:            to,
		Reconciled:    query.Reconciled,
		ReferenceType: query.ReferenceType,
		ReferenceID:   query.ReferenceID,
	}
	for _, t := range query.TransactionTypes {
		filter.TransactionTypes = append(filter.TransactionTypes, domain.TransactionType(t))
	}
	for _, t := range query.AccountTypes {
		filter.AccountTypes = append(filter.AccountTypes, domain.AccountType(t))
	}

	resp, err := h.entries.ListEntries(c.Request.Context(), dto.ListEntriesParams{
		Filter:    filter,
		Limit:     query.Limit,
		NextToken: query.NextToken,
	})
	if err != nil {
		respondError(c, logger, err, "list ledger entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getEntry godoc
// @Summary Get a ledger row
// @Tags ledger
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to get ledger entry"
// @Security BearerAuth
// @Router /ledger/entries/{entryID} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	entry, err := h.entries.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "get ledger entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a ledger row
// @Description Removes one ledger row. Requires the admin key.
// @Tags ledger
// @Param entryID path string true "Entry ID"
// @Param X-Admin-Key header string true "Administrative API key"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin key missing or invalid"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete ledger entry"
// @Security BearerAuth
// @Router /ledger/entries/{entryID} [delete]
func (h *ledgerHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	if err := h.entries.DeleteEntry(c.Request.Context(), entryID); err != nil {
		respondError(c, logger.With(slog.String("entry_id", entryID)), err, "delete ledger entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Description Returns the debit and credit rows posted under one document number
// @Tags ledger
// @Produce json
// @Param documentNumber path string true "Document number"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to get journal entry"
// @Security BearerAuth
// @Router /ledger/journals/{documentNumber} [get]
func (h *ledgerHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentNumber := c.Param("documentNumber")

	entry, err := h.entries.GetJournalEntry(c.Request.Context(), documentNumber)
	if err != nil {
		respondError(c, logger.With(slog.String("document_number", documentNumber)), err, "get journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}
