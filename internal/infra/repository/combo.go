package repository

import (
	"context"
	"log/slog"
	"time"

	"homestay-pricing/internal/domain/combo"
	"homestay-pricing/internal/infra"
	"homestay-pricing/internal/infra/pgquery"
	"homestay-pricing/internal/infra/repository/converter"
	"homestay-pricing/internal/pkg/pgconv"
)

type ComboQueries interface {
	ListComboPackages(ctx context.Context, db pgquery.DBTX, arg pgquery.ListComboPackagesParams) ([]pgquery.ComboPackages, error)
	GetComboPackage(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.ComboPackages, error)
}

type ComboRepository struct {
	queries ComboQueries
	db      pgquery.DBTX
	logger  *slog.Logger
}

func NewComboRepository(queries ComboQueries, db pgquery.DBTX, logger *slog.Logger) *ComboRepository {
	return &ComboRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// List returns active combos offered at the given instant, ordered by minimum nights then price.
func (r *ComboRepository) List(ctx context.Context, filter combo.Filter, at time.Time) ([]combo.Package, error) {
	params := converter.ComboFilterToParams(filter)
	params.At = pgconv.TimeToPgtype(at)

	rows, err := r.queries.ListComboPackages(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list combo packages", err)
	}

	combos := make([]combo.Package, 0, len(rows))
	for _, row := range rows {
		p := converter.ComboFromRow(row)
		if err := p.Validate(); err != nil {
			r.logger.Warn("skipping invalid combo package", slog.Int64("combo_id", p.ID), slog.Any("error", err))
			continue
		}
		combos = append(combos, p)
	}
	return combos, nil
}

func (r *ComboRepository) FindByID(ctx context.Context, id int64) (combo.Package, error) {
	row, err := r.queries.GetComboPackage(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return combo.Package{}, infra.WrapRepoErr(r.logger, infra.KindNotFound, "combo package not found", err)
		}
		return combo.Package{}, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get combo package", err)
	}
	return converter.ComboFromRow(row), nil
}
