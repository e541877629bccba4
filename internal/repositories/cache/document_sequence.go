package cache

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// DocumentSequenceKey is the Redis counter backing document numbers.
const DocumentSequenceKey = "ledger:document_seq"

// RedisDocumentSequence hands out "JE-0000000001"-style document numbers from
// a Redis counter shared by every process writing to the ledger.
type RedisDocumentSequence struct {
	client redis.Cmdable
	key    string
}

var _ portsrepo.DocumentNumberGenerator = (*RedisDocumentSequence)(nil)

// NewRedisDocumentSequence uses DocumentSequenceKey on client.
func NewRedisDocumentSequence(client redis.Cmdable) *RedisDocumentSequence {
	return &RedisDocumentSequence{client: client, key: DocumentSequenceKey}
}

// NextDocumentNumber increments the counter. INCR is atomic on the server, so
// concurrent callers never observe the same value.
func (s *RedisDocumentSequence) NextDocumentNumber(ctx context.Context) (string, error) {
	n, err := s.client.Incr(ctx, s.key).Result()
	if err != nil {
		return "", fmt.Errorf("cache: incr %s: %w", s.key, err)
	}
	return fmt.Sprintf("JE-%010d", n), nil
}
