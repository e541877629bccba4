package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/gin-gonic/gin"
)

const dateOnly = "2006-01-02"

// respondError maps service errors onto HTTP status codes. Internal details
// are logged, never returned.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrUnknownAccountType):
		logger.Warn("Rejected request", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// parseDate accepts RFC3339 or YYYY-MM-DD. With endOfDay set, a date-only
// value is moved to the last nanosecond of that day.
func parseDate(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, use RFC3339 or YYYY-MM-DD", apperrors.ErrValidation, raw)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// parseOptionalDate is parseDate for an optional query parameter.
func parseOptionalDate(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(raw, endOfDay)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parsePeriod reads the from/to query parameters. Missing to defaults to now.
// Missing from defaults to the first day of to's month.
func parsePeriod(c *gin.Context, now time.Time) (time.Time, time.Time, error) {
	to := now.UTC()
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDate(raw, true)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	from := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDate(raw, false)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	return from, to, nil
}
