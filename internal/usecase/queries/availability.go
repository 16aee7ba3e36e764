package queries

import (
	"context"

	"homestay-pricing/internal/domain/availability"
	"homestay-pricing/internal/infra"
	"homestay-pricing/internal/pkg/errs"
	"homestay-pricing/internal/usecase/shared"
)

type CalendarSource interface {
	QuickAvailability(ctx context.Context, homestayID int64, month availability.Month) (availability.Calendar, error)
}

type AvailabilityQueries interface {
	Month(ctx context.Context, homestayID int64, year, month int) (*availability.Calendar, error)
}

type availabilityQueriesImpl struct {
	source CalendarSource
}

func NewAvailabilityQueries(source CalendarSource) AvailabilityQueries {
	return &availabilityQueriesImpl{source: source}
}

func (q *availabilityQueriesImpl) Month(ctx context.Context, homestayID int64, year, month int) (*availability.Calendar, error) {
	m, err := availability.NewMonth(year, month)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	cal, err := q.source.QuickAvailability(ctx, homestayID, m)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrHomestayNotFound)
		}
		if infra.IsKind(err, infra.KindUpstreamRejected) {
			return nil, errs.Mark(err, errs.ErrUpstreamUnavailable)
		}
		return nil, shared.MapDomainError(err)
	}
	return &cal, nil
}
