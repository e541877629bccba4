package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
)

const timeFormat = time.RFC3339Nano

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Cursor identifies the last ledger row of a page. Pages are ordered by
// transaction date, then entry id.
type Cursor struct {
	TransactionDate time.Time
	EntryID         string
}

// EncodeToken creates an opaque, URL-safe token for the cursor.
func EncodeToken(c Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s", c.TransactionDate.UTC().Format(timeFormat), c.EntryID)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken. Malformed tokens yield
// an error wrapping apperrors.ErrValidation.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (base64 decode): %v", apperrors.ErrValidation, err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (split)", apperrors.ErrValidation)
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token (date parse): %v", apperrors.ErrValidation, err)
	}
	return Cursor{TransactionDate: date, EntryID: parts[1]}, nil
}

// DecodeOptional decodes token when present.
func DecodeOptional(token *string) (*Cursor, error) {
	if token == nil || *token == "" {
		return nil, nil
	}
	c, err := DecodeToken(*token)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// After reports whether a row at (date, id) sorts strictly after the cursor.
func (c Cursor) After(date time.Time, id string) bool {
	if date.Equal(c.TransactionDate) {
		return id > c.EntryID
	}
	return date.After(c.TransactionDate)
}

// ClampLimit applies the default and maximum page sizes.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
