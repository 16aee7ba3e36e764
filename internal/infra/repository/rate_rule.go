package repository

import (
	"context"
	"log/slog"

	"homestay-pricing/internal/domain/pricing"
	"homestay-pricing/internal/domain/stay"
	"homestay-pricing/internal/infra"
	"homestay-pricing/internal/infra/pgquery"
	"homestay-pricing/internal/infra/repository/converter"
	"homestay-pricing/internal/pkg/pgconv"
)

type RateRuleQueries interface {
	ListSeasonalPricing(ctx context.Context, db pgquery.DBTX, arg pgquery.ListSeasonalPricingParams) ([]pgquery.SeasonalPricing, error)
	ListHolidays(ctx context.Context, db pgquery.DBTX, arg pgquery.ListHolidaysParams) ([]pgquery.Holidays, error)
}

// RateRuleRepository reads seasonal rules and holidays overlapping a stay.
type RateRuleRepository struct {
	queries RateRuleQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewRateRuleRepository(queries RateRuleQueries, db pgquery.DBTX, logger *slog.Logger) *RateRuleRepository {
	return &RateRuleRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *RateRuleRepository) ScheduleFor(ctx context.Context, homestayID int64, iv stay.Interval) (pricing.RateSchedule, error) {
	dates := iv.Dates()
	if len(dates) == 0 {
		return pricing.RateSchedule{}, nil
	}
	from := pgconv.DateToPgtype(dates[0])
	to := pgconv.DateToPgtype(dates[len(dates)-1])

	ruleRows, err := r.queries.ListSeasonalPricing(ctx, r.db, pgquery.ListSeasonalPricingParams{
		HomestayID: homestayID,
		FromDate:   from,
		ToDate:     to,
	})
	if err != nil {
		return pricing.RateSchedule{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list seasonal pricing", err)
	}

	holidayRows, err := r.queries.ListHolidays(ctx, r.db, pgquery.ListHolidaysParams{FromDate: from, ToDate: to})
	if err != nil {
		return pricing.RateSchedule{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list holidays", err)
	}

	schedule := pricing.RateSchedule{
		Rules:    make([]pricing.SeasonalRule, 0, len(ruleRows)),
		Holidays: make([]pricing.Holiday, 0, len(holidayRows)),
	}
	for _, row := range ruleRows {
		rule, err := converter.SeasonalRuleFromRow(row)
		if err != nil {
			r.logger.Warn("skipping unreadable seasonal rule", slog.Int64("rule_id", row.ID), slog.Any("error", err))
			continue
		}
		schedule.Rules = append(schedule.Rules, rule)
	}
	for _, row := range holidayRows {
		holiday, err := converter.HolidayFromRow(row)
		if err != nil {
			r.logger.Warn("skipping unreadable holiday", slog.Int64("holiday_id", row.ID), slog.Any("error", err))
			continue
		}
		schedule.Holidays = append(schedule.Holidays, holiday)
	}
	return schedule, nil
}
