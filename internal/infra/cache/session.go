package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/infra"

	"github.com/redis/go-redis/v9"
)

const maxSessionRetries = 3

// SessionStore persists pricing contexts. Updates run under WATCH/MULTI so a
// transition is always applied to the latest stored revision.
type SessionStore struct {
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewSessionStore(rdb redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl, logger: logger}
}

func (s *SessionStore) Create(ctx context.Context, pc pricing.Context) error {
	data, err := json.Marshal(pc)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to encode pricing session", err)
	}
	ok, err := s.rdb.SetNX(ctx, sessionKey(pc.ID), data, s.ttl).Result()
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to store pricing session", err)
	}
	if !ok {
		return infra.WrapRepoErr(s.logger, infra.KindConflict, "pricing session already exists", nil)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (pricing.Context, error) {
	data, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return pricing.Context{}, infra.RepositoryError{Kind: infra.KindNotFound}
		}
		return pricing.Context{}, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to load pricing session", err)
	}
	return s.decode(data)
}

// Update loads the session, applies fn and saves the result in one optimistic
// transaction. fn may run more than once when another writer races it; errors
// returned by fn are passed through untouched and nothing is written.
func (s *SessionStore) Update(ctx context.Context, id string, fn func(pricing.Context) (pricing.Context, error)) (pricing.Context, error) {
	key := sessionKey(id)
	var updated pricing.Context

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return infra.RepositoryError{Kind: infra.KindNotFound}
			}
			return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to load pricing session", err)
		}
		current, err := s.decode(data)
		if err != nil {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		updated = next
		if next.Revision == current.Revision {
			return nil
		}

		payload, err := json.Marshal(next)
		if err != nil {
			return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to encode pricing session", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxSessionRetries; attempt++ {
		err := s.rdb.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			s.logger.Info("pricing session changed concurrently, retrying",
				slog.String("session_id", id), slog.Int("attempt", attempt+1))
			continue
		}
		return pricing.Context{}, err
	}
	return pricing.Context{}, infra.WrapRepoErr(s.logger, infra.KindConflict, "pricing session kept changing", nil)
}

func (s *SessionStore) decode(data []byte) (pricing.Context, error) {
	var pc pricing.Context
	if err := json.Unmarshal(data, &pc); err != nil {
		return pricing.Context{}, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to decode pricing session", err)
	}
	return pc, nil
}
