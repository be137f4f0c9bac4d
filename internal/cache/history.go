package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"wecare/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	historyKeyPrefix = "chat:history:%d"
	historyTTL       = 24 * time.Hour
)

// HistoryStore keeps per-session chat transcripts. History is append-only
// for the life of the session; Clear is the explicit teardown at logout.
type HistoryStore interface {
	Append(ctx context.Context, userID uint, turns ...models.ChatTurn) error
	All(ctx context.Context, userID uint) ([]models.ChatTurn, error)
	Clear(ctx context.Context, userID uint) error
}

// NewHistoryStore returns a Redis-backed store when a client is available
// and an in-process store otherwise, so chat keeps working without Redis.
func NewHistoryStore(rdb *redis.Client) HistoryStore {
	if rdb != nil {
		return &redisHistory{rdb: rdb}
	}
	return newMemoryHistory()
}

type redisHistory struct {
	rdb *redis.Client
}

func historyKey(userID uint) string {
	return fmt.Sprintf(historyKeyPrefix, userID)
}

func (s *redisHistory) Append(ctx context.Context, userID uint, turns ...models.ChatTurn) error {
	if len(turns) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(turns))
	for _, turn := range turns {
		b, err := json.Marshal(turn)
		if err != nil {
			return err
		}
		values = append(values, b)
	}
	key := historyKey(userID)
	if err := s.rdb.RPush(ctx, key, values...).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, historyTTL).Err()
}

func (s *redisHistory) All(ctx context.Context, userID uint) ([]models.ChatTurn, error) {
	raw, err := s.rdb.LRange(ctx, historyKey(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	turns := make([]models.ChatTurn, 0, len(raw))
	for _, item := range raw {
		var turn models.ChatTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			return nil, err
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (s *redisHistory) Clear(ctx context.Context, userID uint) error {
	return s.rdb.Del(ctx, historyKey(userID)).Err()
}

// memoryHistory is the process-local fallback used when Redis is down and
// in unit tests.
type memoryHistory struct {
	mu    sync.Mutex
	turns map[uint][]models.ChatTurn
}

func newMemoryHistory() *memoryHistory {
	return &memoryHistory{turns: make(map[uint][]models.ChatTurn)}
}

func (s *memoryHistory) Append(_ context.Context, userID uint, turns ...models.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[userID] = append(s.turns[userID], turns...)
	return nil
}

func (s *memoryHistory) All(_ context.Context, userID uint) ([]models.ChatTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatTurn, len(s.turns[userID]))
	copy(out, s.turns[userID])
	return out, nil
}

func (s *memoryHistory) Clear(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.turns, userID)
	return nil
}
