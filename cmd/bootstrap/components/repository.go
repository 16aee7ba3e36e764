package components

import (
	"log/slog"

	"homestay-pricing/internal/infra/pgquery"
	"homestay-pricing/internal/infra/repository"
	"homestay-pricing/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		NewRateRuleRepository,
		fx.Annotate(
			NewComboRepository,
			fx.As(new(shared.ComboCatalog)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}

func NewRateRuleRepository(q *pgquery.Queries, db pgquery.DBTX, logger *slog.Logger) *repository.RateRuleRepository {
	return repository.NewRateRuleRepository(q, db, logger)
}

func NewComboRepository(q *pgquery.Queries, db pgquery.DBTX, logger *slog.Logger) *repository.ComboRepository {
	return repository.NewComboRepository(q, db, logger)
}
