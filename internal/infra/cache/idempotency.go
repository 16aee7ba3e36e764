package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"homestay-pricing/internal/infra"

	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Status      string          `json:"status"`
	RequestHash string          `json:"requestHash"`
	Result      json.RawMessage `json:"result,omitempty"`
}

// IdempotencyStore tracks keyed requests: TryInsert claims a key as processing,
// Complete stores the outcome for replay, Release frees the key after a failure.
type IdempotencyStore struct {
	rdb    redis.Cmdable
	scope  string
	ttl    time.Duration
	logger *slog.Logger
}

func NewIdempotencyStore(rdb redis.Cmdable, scope string, ttl time.Duration, logger *slog.Logger) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, scope: scope, ttl: ttl, logger: logger}
}

// TryInsert reports whether the caller now owns the key.
func (s *IdempotencyStore) TryInsert(ctx context.Context, key, requestHash string) (bool, error) {
	data, err := json.Marshal(IdempotencyRecord{Status: IdempotencyProcessing, RequestHash: requestHash})
	if err != nil {
		return false, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to encode idempotency record", err)
	}
	ok, err := s.rdb.SetNX(ctx, idempotencyKey(s.scope, key), data, s.ttl).Result()
	if err != nil {
		return false, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to insert idempotency key", err)
	}
	return ok, nil
}

func (s *IdempotencyStore) Get(ctx context.Context, key string) (*IdempotencyRecord, error) {
	data, err := s.rdb.Get(ctx, idempotencyKey(s.scope, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.RepositoryError{Kind: infra.KindNotFound}
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to get idempotency key", err)
	}
	var rec IdempotencyRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to decode idempotency record", err)
	}
	return &rec, nil
}

func (s *IdempotencyStore) Complete(ctx context.Context, key, requestHash string, result any) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to encode idempotent result", err)
	}
	data, err := json.Marshal(IdempotencyRecord{Status: IdempotencyCompleted, RequestHash: requestHash, Result: raw})
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to encode idempotency record", err)
	}
	if err := s.rdb.Set(ctx, idempotencyKey(s.scope, key), data, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to complete idempotency key", err)
	}
	return nil
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, idempotencyKey(s.scope, key)).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to release idempotency key", err)
	}
	return nil
}
