package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reconciliationHandler struct {
	reconciliation portssvc.ReconciliationSvc
}

func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliation portssvc.ReconciliationSvc) {
	h := &reconciliationHandler{reconciliation: reconciliation}

	group := rg.Group("/reconciliation")
	{
		group.GET("/unreconciled", h.listUnreconciled)
		group.POST("/:entryID", h.markReconciled)
	}
}

// listUnreconciled godoc
// @Summary List unreconciled ledger rows
// @Tags reconciliation
// @Produce json
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list unreconciled entries"
// @Security BearerAuth
// @Router /ledger/reconciliation/unreconciled [get]
func (h *reconciliationHandler) listUnreconciled(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.reconciliation.ListUnreconciled(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list unreconciled entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponses(entries))
}

// markReconciled godoc
// @Summary Mark a ledger row reconciled
// @Tags reconciliation
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to reconcile entry"
// @Security BearerAuth
// @Router /ledger/reconciliation/{entryID} [post]
func (h *reconciliationHandler) markReconciled(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")
	logger = logger.With(slog.String("entry_id", entryID))

	entry, err := h.reconciliation.MarkReconciled(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, logger, err, "reconcile entry")
		return
	}
	logger.Info("Ledger entry reconciled")
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}
