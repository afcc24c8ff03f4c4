package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aelexs/civiltime/internal/domain"
	"github.com/aelexs/civiltime/internal/domain/domaintest"
)

func TestRealClock(t *testing.T) {
	t.Run("returns current time", func(t *testing.T) {
		clock := domain.RealClock{}
		before := time.Now()
		got := clock.Now()
		after := time.Now()

		assert.False(t, got.Before(before), "clock.Now() should not be before reference time")
		assert.False(t, got.After(after), "clock.Now() should not be after reference time")
	})
}

func TestFakeClock(t *testing.T) {
	fixedTime := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("returns fixed time", func(t *testing.T) {
		clock := domaintest.NewFakeClock(fixedTime)
		assert.True(t, clock.Now().Equal(fixedTime))
	})

	t.Run("advance moves time forward", func(t *testing.T) {
		clock := domaintest.NewFakeClock(fixedTime)
		clock.Advance(1 * time.Hour)

		expected := fixedTime.Add(1 * time.Hour)
		assert.True(t, clock.Now().Equal(expected))
	})

	t.Run("set changes time", func(t *testing.T) {
		clock := domaintest.NewFakeClock(fixedTime)
		newTime := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
		clock.Set(newTime)

		assert.True(t, clock.Now().Equal(newTime))
	})
}

func TestReadEpoch(t *testing.T) {
	t.Run("splits seconds and nanos", func(t *testing.T) {
		clock := domaintest.NewFakeClockAt(1769941845, 123456789)

		r, err := domain.ReadEpoch(clock)

		require.NoError(t, err)
		assert.Equal(t, uint64(1769941845), r.Seconds)
		assert.Equal(t, uint32(123456789), r.Nanos)
	})

	t.Run("epoch itself is valid", func(t *testing.T) {
		r, err := domain.ReadEpoch(domaintest.NewFakeClockAt(0, 0))

		require.NoError(t, err)
		assert.Equal(t, domain.EpochReading{}, r)
	})

	t.Run("before epoch is fatal", func(t *testing.T) {
		clock := domaintest.NewFakeClock(time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC))

		_, err := domain.ReadEpoch(clock)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrClockBeforeEpoch)
		assert.True(t, domain.IsFatal(err))
	})

	t.Run("after year 9999 is fatal", func(t *testing.T) {
		clock := domaintest.NewFakeClockAt(domain.MaxEpochSeconds+1, 0)

		_, err := domain.ReadEpoch(clock)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrClockOutOfRange)
		assert.True(t, domain.IsFatal(err))
	})

	t.Run("real clock reads after epoch", func(t *testing.T) {
		r, err := domain.ReadEpoch(domain.RealClock{})

		require.NoError(t, err)
		assert.Greater(t, r.Seconds, uint64(0))
		assert.Less(t, r.Nanos, uint32(domain.NanosPerSecond))
	})
}

func TestEpochReadingUnits(t *testing.T) {
	r := domain.EpochReading{Seconds: 1769941845, Nanos: 123456789}

	assert.Equal(t, uint64(1769941845123), r.Millis())
	assert.Equal(t, uint64(1769941845123456), r.Micros())
}

func TestEpochReadingUnitsAtUpperBound(t *testing.T) {
	r := domain.EpochReading{Seconds: domain.MaxEpochSeconds, Nanos: 999_999_999}

	require.NoError(t, r.Validate())
	assert.Equal(t, uint64(253402300799999), r.Millis())
	assert.Equal(t, uint64(253402300799999999), r.Micros())
}

func TestEpochReadingValidate(t *testing.T) {
	tests := []struct {
		name    string
		reading domain.EpochReading
		wantErr bool
	}{
		{"epoch", domain.EpochReading{}, false},
		{"upper bound", domain.EpochReading{Seconds: domain.MaxEpochSeconds}, false},
		{"one past upper bound", domain.EpochReading{Seconds: domain.MaxEpochSeconds + 1}, true},
		{"seconds that would overflow micros", domain.EpochReading{Seconds: 1e17}, true},
		{"nanos at one second", domain.EpochReading{Seconds: 1, Nanos: domain.NanosPerSecond}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reading.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.True(t, domain.IsClientError(err))
		})
	}
}
