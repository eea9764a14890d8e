package session

import (
	"context"
	"testing"
	"time"

	"cleangod/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisDraftStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisDraftStore(client, 30*time.Minute), mr
}

func sampleDraft() entities.BookingDraft {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	d := entities.NewBookingDraft("sess-1", "idem-1", entities.DraftItem{Type: entities.ItemTypeService, ID: "svc-1", Name: "Deep clean", UnitPrice: 999}, now)
	d, _ = d.WithTime("2026-10-20", "11:00", now)
	return d
}

func TestRedisDraftStore_SaveAndLoad(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleDraft()))
	assert.Equal(t, 30*time.Minute, mr.TTL("draft:sess-1"))

	got, found, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, sampleDraft(), got)
}

func TestRedisDraftStore_Expiry(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleDraft()))
	mr.FastForward(31 * time.Minute)

	_, found, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisDraftStore_Missing(t *testing.T) {
	store, _ := setupTestRedis(t)

	_, found, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisDraftStore_CorruptedEntry(t *testing.T) {
	store, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("draft:sess-1", "{not json"))

	_, _, err := store.Load(context.Background(), "sess-1")
	require.ErrorContains(t, err, "unmarshal draft failed")
}

func TestRedisDraftStore_Delete(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleDraft()))
	require.NoError(t, store.Delete(ctx, "sess-1"))
	assert.False(t, mr.Exists("draft:sess-1"))
	require.NoError(t, store.Delete(ctx, "sess-1"))
}

func TestRedisDraftStore_SubmitLock(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	ok, err := store.AcquireSubmitLock(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.AcquireSubmitLock(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok, "second submission must be rejected while the first is in flight")

	other, err := store.AcquireSubmitLock(ctx, "sess-2")
	require.NoError(t, err)
	assert.True(t, other)

	require.NoError(t, store.ReleaseSubmitLock(ctx, "sess-1"))
	ok, err = store.AcquireSubmitLock(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(defaultSubmitLockTTL + time.Second)
	ok, err = store.AcquireSubmitLock(ctx, "sess-2")
	require.NoError(t, err)
	assert.True(t, ok, "abandoned lock must expire")
}

func TestRedisDraftStore_ConnectionError(t *testing.T) {
	store, mr := setupTestRedis(t)
	mr.Close()

	_, _, err := store.Load(context.Background(), "sess-1")
	require.ErrorContains(t, err, "redis get failed")
}
