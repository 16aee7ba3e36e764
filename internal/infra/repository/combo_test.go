//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"homestay-pricing/internal/domain/combo"
	"homestay-pricing/internal/domain/money"
	"homestay-pricing/internal/infra"
	"homestay-pricing/internal/infra/pgquery"
	"homestay-pricing/internal/infra/repository"
	repositorymock "homestay-pricing/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func comboRow(id int64, minNights int32, orig, price int64) pgquery.ComboPackages {
	return pgquery.ComboPackages{
		ID:                id,
		Name:              "Combo",
		Description:       pgtype.Text{String: "3 nights + breakfast", Valid: true},
		MinNights:         minNights,
		IncludesBreakfast: true,
		OriginalPrice:     orig,
		ComboPrice:        price,
		IsActive:          true,
	}
}

func TestComboRepository_List(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	homestayID := int64(7)
	breakfast := true

	t.Run("success: filter forwarded and rows converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockComboQueries(ctrl)
		repo := repository.NewComboRepository(mockQueries, &mockDBTX{}, discardLogger)

		mockQueries.EXPECT().ListComboPackages(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.ListComboPackagesParams) ([]pgquery.ComboPackages, error) {
				assert.Equal(t, pgtype.Int8{Int64: 7, Valid: true}, arg.HomestayID)
				assert.Equal(t, pgtype.Bool{Bool: true, Valid: true}, arg.IncludesBreakfast)
				assert.False(t, arg.MinNights.Valid)
				assert.Equal(t, at, arg.At.Time)
				return []pgquery.ComboPackages{comboRow(1, 3, 3_000_000, 2_600_000)}, nil
			})

		got, err := repo.List(ctx, combo.Filter{HomestayID: &homestayID, IncludesBreakfast: &breakfast}, at)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "3 nights + breakfast", got[0].Description)
		assert.Equal(t, money.VND(400_000), got[0].Discount())
		assert.Nil(t, got[0].MaxNights)
	})

	t.Run("success: invalid catalog rows skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockComboQueries(ctrl)
		repo := repository.NewComboRepository(mockQueries, &mockDBTX{}, discardLogger)

		mockQueries.EXPECT().ListComboPackages(ctx, gomock.Any(), gomock.Any()).Return([]pgquery.ComboPackages{
			comboRow(1, 2, 1_000_000, 900_000),
			comboRow(2, 2, 1_000_000, 1_200_000),
		}, nil)

		got, err := repo.List(ctx, combo.Filter{}, at)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("error: query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockComboQueries(ctrl)
		repo := repository.NewComboRepository(mockQueries, &mockDBTX{}, discardLogger)

		mockQueries.EXPECT().ListComboPackages(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := repo.List(ctx, combo.Filter{}, at)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestComboRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rowErr     error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: found"},
		{name: "error: not found", rowErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database failure", rowErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockComboQueries(ctrl)
			repo := repository.NewComboRepository(mockQueries, &mockDBTX{}, discardLogger)

			mockQueries.EXPECT().GetComboPackage(ctx, gomock.Any(), int64(5)).Return(comboRow(5, 2, 2_000_000, 1_800_000), tc.rowErr)

			got, err := repo.FindByID(ctx, 5)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), got.ID)
			assert.Equal(t, 2, got.MinNights)
		})
	}
}
