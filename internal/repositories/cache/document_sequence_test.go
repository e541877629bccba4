package cache

import (
	"context"
	"sync"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSequence(t *testing.T) (*RedisDocumentSequence, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisDocumentSequence(client), mr
}

func TestRedisDocumentSequence_Format(t *testing.T) {
	seq, mr := newSequence(t)
	ctx := context.Background()

	first, err := seq.NextDocumentNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "JE-0000000001", first)

	second, err := seq.NextDocumentNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "JE-0000000002", second)

	got, err := mr.Get(DocumentSequenceKey)
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestRedisDocumentSequence_ConcurrentUnique(t *testing.T) {
	seq, _ := newSequence(t)
	ctx := context.Background()

	const workers = 50
	var (
		mu   sync.Mutex
		seen = make(map[string]bool, workers)
		wg   sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := seq.NextDocumentNumber(ctx)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			assert.False(t, seen[doc], "duplicate %s", doc)
			seen[doc] = true
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers)
}

func TestRedisDocumentSequence_ServerDown(t *testing.T) {
	seq, mr := newSequence(t)
	mr.Close()

	_, err := seq.NextDocumentNumber(context.Background())
	assert.Error(t, err)
}

func TestNew_PingsServer(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := New(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer client.Close()

	_, err = New(context.Background(), "not-a-url")
	assert.Error(t, err)
}
