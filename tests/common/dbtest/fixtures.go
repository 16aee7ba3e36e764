//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type SeasonalRule struct {
	Name              string
	StartDate         string
	EndDate           string
	Multiplier        string
	Surcharge         int64
	AppliesToWeekends bool
	AppliesToHolidays bool
	HomestayIDs       []int64
}

func CreateSeasonalRule(t *testing.T, db DBLike, r SeasonalRule) int64 {
	t.Helper()

	if r.Multiplier == "" {
		r.Multiplier = "1"
	}
	if r.HomestayIDs == nil {
		r.HomestayIDs = []int64{}
	}

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO seasonal_pricing
		    (name, start_date, end_date, price_multiplier, surcharge, applies_to_weekends, applies_to_holidays, homestay_ids)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)
		RETURNING id`,
		r.Name, r.StartDate, r.EndDate, r.Multiplier, r.Surcharge, r.AppliesToWeekends, r.AppliesToHolidays, r.HomestayIDs,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateHoliday(t *testing.T, db DBLike, name, from, to, multiplier string, surcharge int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO holidays (name, from_date, to_date, price_multiplier, surcharge)
		VALUES ($1, $2, $3, $4::numeric, $5)
		RETURNING id`,
		name, from, to, multiplier, surcharge,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

type Combo struct {
	Name              string
	MinNights         int
	MaxNights         *int
	IncludesBreakfast bool
	OriginalPrice     int64
	ComboPrice        int64
	HomestayIDs       []int64
}

// CreateCombo inserts an active combo; an empty HomestayIDs offers it everywhere.
func CreateCombo(t *testing.T, db DBLike, c Combo) int64 {
	t.Helper()
	ctx := context.Background()

	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO combo_packages
		    (name, min_nights, max_nights, includes_breakfast, original_price, combo_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		c.Name, c.MinNights, c.MaxNights, c.IncludesBreakfast, c.OriginalPrice, c.ComboPrice,
	).Scan(&id)
	require.NoError(t, err)

	for _, homestayID := range c.HomestayIDs {
		_, err := db.Exec(ctx, "INSERT INTO combo_homestays (combo_id, homestay_id) VALUES ($1, $2)", id, homestayID)
		require.NoError(t, err)
	}
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO holidays (name, from_date, to_date, price_multiplier, surcharge) VALUES
		    ('Reunification Day', '2026-04-30', '2026-05-01', 1.500, 0),
		    ('National Day', '2026-09-02', '2026-09-02', 1.300, 100000);
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
