//go:build unit

package stay_test

import (
	"encoding/json"
	"testing"
	"time"

	"homestay-pricing/internal/domain/stay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreate(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		iv, err := stay.Create("2024-06-01", "2024-06-04", 1)
		require.NoError(t, err)

		assert.Equal(t, 3, iv.Nights())
		assert.Equal(t, date(2024, 6, 1), iv.CheckIn())
		assert.Equal(t, date(2024, 6, 4), iv.CheckOut())
		assert.Equal(t, "[2024-06-01,2024-06-04)", iv.String())
	})

	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			name     string
			checkIn  string
			checkOut string
			minStay  int
			errIs    error
		}{
			{name: "same day", checkIn: "2024-06-01", checkOut: "2024-06-01", minStay: 1, errIs: stay.ErrInvalidDateOrder},
			{name: "reversed", checkIn: "2024-06-05", checkOut: "2024-06-01", minStay: 1, errIs: stay.ErrInvalidDateOrder},
			{name: "below minimum stay", checkIn: "2024-06-01", checkOut: "2024-06-02", minStay: 2, errIs: stay.ErrBelowMinimumStay},
			{name: "exactly minimum stay", checkIn: "2024-06-01", checkOut: "2024-06-03", minStay: 2},
			{name: "non-positive minimum treated as one", checkIn: "2024-06-01", checkOut: "2024-06-02", minStay: 0},
			{name: "empty check-in", checkIn: " ", checkOut: "2024-06-02", minStay: 1, errIs: stay.ErrInvalidDate},
			{name: "garbage check-out", checkIn: "2024-06-01", checkOut: "next friday", minStay: 1, errIs: stay.ErrInvalidDate},
			{name: "invalid calendar date", checkIn: "2024-02-30", checkOut: "2024-03-02", minStay: 1, errIs: stay.ErrInvalidDate},
			{name: "exactly default maximum stay", checkIn: "2025-01-01", checkOut: "2026-01-01", minStay: 1},
			{name: "above default maximum stay", checkIn: "2024-01-01", checkOut: "2025-01-02", minStay: 1, errIs: stay.ErrAboveMaximumStay},
			{name: "span of eight millennia", checkIn: "0001-01-02", checkOut: "9999-12-31", minStay: 1, errIs: stay.ErrAboveMaximumStay},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := stay.Create(tc.checkIn, tc.checkOut, tc.minStay)
				if tc.errIs != nil {
					require.Error(t, err)
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})

	t.Run("minimum stay error reports nights", func(t *testing.T) {
		_, err := stay.Create("2024-06-01", "2024-06-03", 3)

		var minErr *stay.MinimumStayError
		require.ErrorAs(t, err, &minErr)
		assert.Equal(t, 2, minErr.Nights)
		assert.Equal(t, 3, minErr.Minimum)
	})

	t.Run("partial days round up", func(t *testing.T) {
		iv, err := stay.Create("2024-06-01T14:00:00Z", "2024-06-03T12:00:00Z", 1)
		require.NoError(t, err)
		assert.Equal(t, 2, iv.Nights())

		iv, err = stay.Create("2024-06-01T10:00:00Z", "2024-06-03T12:00:00Z", 1)
		require.NoError(t, err)
		assert.Equal(t, 3, iv.Nights())
	})

	t.Run("maximum stay error reports true nights beyond duration range", func(t *testing.T) {
		_, err := stay.Create("0001-01-02", "9999-12-31", 1)

		var maxErr *stay.MaximumStayError
		require.ErrorAs(t, err, &maxErr)
		assert.Equal(t, 3652057, maxErr.Nights)
		assert.Equal(t, stay.DefaultMaximumStay, maxErr.Maximum)
	})

	t.Run("nights equal ceil of day difference across month boundary", func(t *testing.T) {
		iv, err := stay.New(date(2024, 1, 30), date(2024, 2, 2), 1)
		require.NoError(t, err)
		assert.Equal(t, 3, iv.Nights())
	})
}

func TestLimits_Create(t *testing.T) {
	testCases := []struct {
		name       string
		limits     stay.Limits
		checkOut   string
		wantNights int
		errIs      error
	}{
		{name: "configured maximum allows a longer stay", limits: stay.Limits{MinNights: 1, MaxNights: 400}, checkOut: "2025-01-06", wantNights: 371},
		{name: "configured maximum rejects", limits: stay.Limits{MinNights: 1, MaxNights: 7}, checkOut: "2024-01-09", errIs: stay.ErrAboveMaximumStay},
		{name: "zero maximum falls back to the default", limits: stay.Limits{}, checkOut: "2025-01-06", errIs: stay.ErrAboveMaximumStay},
		{name: "maximum above ceiling is capped", limits: stay.Limits{MaxNights: 100000}, checkOut: "2040-01-01", errIs: stay.ErrAboveMaximumStay},
		{name: "minimum still applies", limits: stay.Limits{MinNights: 3, MaxNights: 30}, checkOut: "2024-01-03", errIs: stay.ErrBelowMinimumStay},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			iv, err := tc.limits.Create("2024-01-01", tc.checkOut)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantNights, iv.Nights())
		})
	}
}

func TestInterval_DatesKeepInputOffset(t *testing.T) {
	testCases := []struct {
		name      string
		checkIn   string
		checkOut  string
		wantDates []time.Time
		wantRange string
	}{
		{
			name:      "midnight ahead of UTC",
			checkIn:   "2024-06-01T00:00:00+07:00",
			checkOut:  "2024-06-03T00:00:00+07:00",
			wantDates: []time.Time{date(2024, 6, 1), date(2024, 6, 2)},
			wantRange: "[2024-06-01,2024-06-03)",
		},
		{
			name:      "late evening behind UTC",
			checkIn:   "2024-06-07T22:00:00-05:00",
			checkOut:  "2024-06-08T22:00:00-05:00",
			wantDates: []time.Time{date(2024, 6, 7)},
			wantRange: "[2024-06-07,2024-06-08)",
		},
		{
			name:      "timestamp without offset is read as written",
			checkIn:   "2024-06-08T14:00:00",
			checkOut:  "2024-06-09T12:00:00",
			wantDates: []time.Time{date(2024, 6, 8)},
			wantRange: "[2024-06-08,2024-06-09)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			iv, err := stay.Create(tc.checkIn, tc.checkOut, 1)
			require.NoError(t, err)

			assert.Equal(t, tc.wantDates, iv.Dates())
			assert.Equal(t, tc.wantRange, iv.String())
		})
	}

	t.Run("offset survives a JSON round trip", func(t *testing.T) {
		iv, err := stay.Create("2024-06-01T00:00:00+07:00", "2024-06-03T00:00:00+07:00", 1)
		require.NoError(t, err)

		data, err := json.Marshal(iv)
		require.NoError(t, err)
		var decoded stay.Interval
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.True(t, iv.Equal(decoded))
		assert.Equal(t, []time.Time{date(2024, 6, 1), date(2024, 6, 2)}, decoded.Dates())
	})
}

func TestInterval_Dates(t *testing.T) {
	iv, err := stay.Create("2024-06-01", "2024-06-04", 1)
	require.NoError(t, err)

	dates := iv.Dates()
	require.Len(t, dates, iv.Nights())
	assert.Equal(t, []time.Time{date(2024, 6, 1), date(2024, 6, 2), date(2024, 6, 3)}, dates)
	assert.NotContains(t, dates, iv.CheckOut())
}

func TestInterval_JSON(t *testing.T) {
	iv, err := stay.Create("2024-06-01", "2024-06-04", 2)
	require.NoError(t, err)

	data, err := json.Marshal(iv)
	require.NoError(t, err)
	assert.JSONEq(t, `{"checkIn":"2024-06-01T00:00:00Z","checkOut":"2024-06-04T00:00:00Z","nights":3}`, string(data))

	var decoded stay.Interval
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, iv.Equal(decoded))
	assert.Equal(t, 3, decoded.Nights())

	err = json.Unmarshal([]byte(`{"checkIn":"2024-06-04T00:00:00Z","checkOut":"2024-06-01T00:00:00Z"}`), &decoded)
	assert.ErrorIs(t, err, stay.ErrInvalidDateOrder)
}
