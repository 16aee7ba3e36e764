package queries

import (
	"context"

	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/infra"
	"homestay-pricing/internal/pkg/errs"
	"homestay-pricing/internal/usecase/shared"
)

type SessionReader interface {
	Get(ctx context.Context, id string) (pricing.Context, error)
}

type SessionQueries interface {
	Get(ctx context.Context, id string) (*pricing.Context, error)
}

type sessionQueriesImpl struct {
	sessions SessionReader
}

func NewSessionQueries(sessions SessionReader) SessionQueries {
	return &sessionQueriesImpl{sessions: sessions}
}

func (q *sessionQueriesImpl) Get(ctx context.Context, id string) (*pricing.Context, error) {
	pc, err := q.sessions.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSessionNotFound)
		}
		return nil, shared.MapDomainError(err)
	}
	return &pc, nil
}
