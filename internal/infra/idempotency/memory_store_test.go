package idempotency

import (
	"context"
	"testing"
	"time"

	"mesa/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CheckMissReturnsNil(t *testing.T) {
	store := NewMemoryStore()

	record, err := store.Check(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestMemoryStore_StoreAndCheck(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := &entity.IdempotencyRecord{
		Key:        "actor:key-1",
		StatusCode: 201,
		Body:       []byte(`{"success":true}`),
	}

	require.NoError(t, store.Store(ctx, original, time.Minute))

	cached, err := store.Check(ctx, "actor:key-1")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 201, cached.StatusCode)
	assert.Equal(t, original.Body, cached.Body)
}

func TestMemoryStore_ExpiredRecordIsAMiss(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := &entity.IdempotencyRecord{Key: "actor:key-1", StatusCode: 200}
	require.NoError(t, store.Store(ctx, record, time.Nanosecond))

	time.Sleep(5 * time.Millisecond)

	cached, err := store.Check(ctx, "actor:key-1")
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestMemoryStore_Invalidate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := &entity.IdempotencyRecord{Key: "actor:key-1", StatusCode: 200}
	require.NoError(t, store.Store(ctx, record, time.Minute))
	require.NoError(t, store.Invalidate(ctx, "actor:key-1"))

	cached, err := store.Check(ctx, "actor:key-1")
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestMemoryStore_CheckReturnsACopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := &entity.IdempotencyRecord{Key: "actor:key-1", StatusCode: 200, Body: []byte("a")}
	require.NoError(t, store.Store(ctx, record, time.Minute))

	first, err := store.Check(ctx, "actor:key-1")
	require.NoError(t, err)
	first.StatusCode = 500

	second, err := store.Check(ctx, "actor:key-1")
	require.NoError(t, err)
	assert.Equal(t, 200, second.StatusCode)
}
