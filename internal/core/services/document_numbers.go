package services

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// DocumentNumberPrefix starts every generated document number.
const DocumentNumberPrefix = "JE-"

type uuidDocumentNumbers struct{}

// NewUUIDDocumentNumberGenerator returns a generator producing "JE-<uuidv7>".
// UUIDv7 values are time-ordered and need no shared counter.
func NewUUIDDocumentNumberGenerator() portsrepo.DocumentNumberGenerator {
	return uuidDocumentNumbers{}
}

func (uuidDocumentNumbers) NextDocumentNumber(_ context.Context) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate document number: %w", err)
	}
	return DocumentNumberPrefix + id.String(), nil
}
