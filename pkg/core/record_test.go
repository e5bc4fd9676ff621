package core

import (
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock replaces the package clock with a manually advanced one.
func fakeClock(t *testing.T, start time.Time) *time.Time {
	t.Helper()
	now := start
	prev := clock
	clock = func() time.Time { return now }
	t.Cleanup(func() { clock = prev })
	return &now
}

func TestNewRecord(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		amount  string
		wantErr error
	}{
		{"valid", "Lunch", "12.50", nil},
		{"zero amount", "Free sample", "0", nil},
		{"empty title", "", "5", ErrEmptyTitle},
		{"negative amount", "x", "-1", ErrNegativeAmount},
		{"too many places", "x", "1.005", ErrAmountPrecision},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRecord(tc.title, decimal.RequireFromString(tc.amount))
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, r)
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)

				var verr *ValidationError
				assert.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.title, r.Title())
			assert.True(t, r.Amount().Equal(decimal.RequireFromString(tc.amount)))
			assert.Equal(t, r.CreatedAt(), r.UpdatedAt())
			assert.Equal(t, time.UTC, r.CreatedAt().Location())
		})
	}
}

func TestNewRecord_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		r, err := NewRecord("x", decimal.Zero)
		require.NoError(t, err)
		id := r.ID().String()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestRecord_Update(t *testing.T) {
	now := fakeClock(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	r, err := NewRecord("Lunch", MustAmount("12.50"))
	require.NoError(t, err)
	created := r.CreatedAt()

	t.Run("amount only", func(t *testing.T) {
		*now = now.Add(time.Minute)
		require.NoError(t, r.Update(Patch{Amount: lo.ToPtr(MustAmount("13.00"))}))
		assert.Equal(t, "Lunch", r.Title())
		assert.Equal(t, "13", r.Amount().String())
		assert.Equal(t, *now, r.UpdatedAt())
		assert.Equal(t, created, r.CreatedAt())
	})

	t.Run("title only", func(t *testing.T) {
		*now = now.Add(time.Minute)
		require.NoError(t, r.Update(Patch{Title: lo.ToPtr("Brunch")}))
		assert.Equal(t, "Brunch", r.Title())
		assert.Equal(t, "13", r.Amount().String())
		assert.Equal(t, *now, r.UpdatedAt())
	})

	t.Run("same values still refresh", func(t *testing.T) {
		*now = now.Add(time.Minute)
		require.NoError(t, r.Update(Patch{Title: lo.ToPtr("Brunch")}))
		assert.Equal(t, *now, r.UpdatedAt())
	})

	t.Run("empty patch still refreshes", func(t *testing.T) {
		*now = now.Add(time.Minute)
		require.NoError(t, r.Update(Patch{}))
		assert.Equal(t, *now, r.UpdatedAt())
		assert.Equal(t, created, r.CreatedAt())
	})
}

func TestRecord_Update_Atomic(t *testing.T) {
	now := fakeClock(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	r, err := NewRecord("Lunch", MustAmount("12.50"))
	require.NoError(t, err)
	before := r.UpdatedAt()
	*now = now.Add(time.Hour)

	err = r.Update(Patch{Title: lo.ToPtr(""), Amount: lo.ToPtr(MustAmount("5"))})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	err = r.Update(Patch{Title: lo.ToPtr("Dinner"), Amount: lo.ToPtr(decimal.NewFromInt(-1))})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeAmount)

	assert.Equal(t, "Lunch", r.Title())
	assert.True(t, r.Amount().Equal(MustAmount("12.50")))
	assert.Equal(t, before, r.UpdatedAt(), "failed update must not touch timestamps")
}

func TestRecord_Update_ClockSkew(t *testing.T) {
	now := fakeClock(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	r, err := NewRecord("Lunch", MustAmount("1"))
	require.NoError(t, err)

	*now = now.Add(-time.Hour)
	require.NoError(t, r.Update(Patch{}))

	assert.False(t, r.UpdatedAt().Before(r.CreatedAt()))
	assert.Equal(t, r.CreatedAt(), r.UpdatedAt())
}

func TestRecord_Timestamps_Microsecond(t *testing.T) {
	fakeClock(t, time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.FixedZone("CET", 3600)))

	r, err := NewRecord("Lunch", MustAmount("1"))
	require.NoError(t, err)

	assert.Equal(t, 123456000, r.CreatedAt().Nanosecond())
	assert.Equal(t, time.UTC, r.CreatedAt().Location())
	assert.Equal(t, 11, r.CreatedAt().Hour())
}
