package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cleangod/internal/domain/entities"
	"cleangod/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultSubmitLockTTL = 30 * time.Second

// RedisDraftStore keeps one booking draft per browsing session. Entries expire
// after ttl without activity; every Save refreshes the expiry.
type RedisDraftStore struct {
	client  *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
}

var _ interfaces.IDraftStore = (*RedisDraftStore)(nil)

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl, lockTTL: defaultSubmitLockTTL}
}

func (s *RedisDraftStore) Load(ctx context.Context, sessionID string) (entities.BookingDraft, bool, error) {
	data, err := s.client.Get(ctx, draftKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.BookingDraft{}, false, nil
	}
	if err != nil {
		return entities.BookingDraft{}, false, fmt.Errorf("redis get failed: %w", err)
	}

	var d entities.BookingDraft
	if err := json.Unmarshal(data, &d); err != nil {
		return entities.BookingDraft{}, false, fmt.Errorf("unmarshal draft failed: %w", err)
	}
	return d, true, nil
}

func (s *RedisDraftStore) Save(ctx context.Context, d entities.BookingDraft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal draft failed: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(d.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// AcquireSubmitLock reports false when another submission for the session
// holds the lock. The lock expires on its own if never released.
func (s *RedisDraftStore) AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, lockKey(sessionID), time.Now().UTC().Format(time.RFC3339Nano), s.lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx failed: %w", err)
	}
	return ok, nil
}

func (s *RedisDraftStore) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, lockKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func draftKey(sessionID string) string {
	return fmt.Sprintf("draft:%s", sessionID)
}

func lockKey(sessionID string) string {
	return fmt.Sprintf("draft:%s:submit", sessionID)
}
