package infeed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

func TestAlignCalendarShiftsMeasuredOntoForecastDay(t *testing.T) {
	measured := []model.MeasuredInterval{
		measuredAt("WND01", time.Date(2025, 7, 6, 10, 0, 0, 0, time.UTC), 100),
		measuredAt("WND01", time.Date(2025, 7, 6, 10, 15, 0, 0, time.UTC), 110),
	}
	forecasts := []model.ForecastRecord{
		forecastAt("WND01", time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC), 90),
	}

	shifted, days := AlignCalendar(measured, forecasts, time.UTC)
	assert.Equal(t, 2, days)
	require.Len(t, shifted, 2)
	assert.Equal(t, time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC), shifted[0].DeliveryStart)
	assert.Equal(t, time.Date(2025, 7, 8, 10, 15, 0, 0, time.UTC), shifted[1].DeliveryStart)

	// Input slice stays untouched.
	assert.Equal(t, time.Date(2025, 7, 6, 10, 0, 0, 0, time.UTC), measured[0].DeliveryStart)
}

func TestAlignCalendarAcrossDSTTransition(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// March to July spans the spring-forward transition, so the wall
	// clock distance between the two midnights is an hour short of a
	// whole number of days. The offset must still count calendar days.
	measured := []model.MeasuredInterval{
		measuredAt("WND01", time.Date(2025, 3, 1, 10, 0, 0, 0, berlin), 100),
	}
	forecasts := []model.ForecastRecord{
		forecastAt("WND01", time.Date(2025, 7, 8, 10, 0, 0, 0, berlin), 90),
	}

	shifted, days := AlignCalendar(measured, forecasts, berlin)
	assert.Equal(t, 129, days)
	require.Len(t, shifted, 1)

	got := shifted[0].DeliveryStart.In(berlin)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.July, got.Month())
	assert.Equal(t, 8, got.Day())
	assert.Equal(t, 10, got.Hour())
}

func TestAlignCalendarNoopOnSameDay(t *testing.T) {
	measured := []model.MeasuredInterval{
		measuredAt("WND01", time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC), 100),
	}
	forecasts := []model.ForecastRecord{
		forecastAt("WND01", time.Date(2025, 7, 8, 23, 45, 0, 0, time.UTC), 90),
	}

	shifted, days := AlignCalendar(measured, forecasts, time.UTC)
	assert.Equal(t, 0, days)
	assert.Equal(t, measured, shifted)
}

func TestAlignCalendarNoopWithoutEitherSide(t *testing.T) {
	measured := []model.MeasuredInterval{
		measuredAt("WND01", time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC), 100),
	}

	shifted, days := AlignCalendar(measured, nil, time.UTC)
	assert.Equal(t, 0, days)
	assert.Equal(t, measured, shifted)

	shifted, days = AlignCalendar(nil, []model.ForecastRecord{forecastAt("WND01", time.Now(), 1)}, time.UTC)
	assert.Equal(t, 0, days)
	assert.Empty(t, shifted)
}
