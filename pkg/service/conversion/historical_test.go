package conversion

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftflow/swiftflow/pkg/domain"
)

func historicalService() *Service {
	// The generator never touches the rate provider.
	return New(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHistorical_SeriesShape(t *testing.T) {
	assert := assert.New(t)
	svc := historicalService()

	series, err := svc.Historical("usd", "eur", 30)
	require.NoError(t, err)

	assert.Equal("USD", series.From)
	assert.Equal("EUR", series.To)
	assert.Equal("30 days", series.Period)
	assert.Len(series.Historical, 31)

	// Dates are consecutive calendar days ending today.
	today := time.Now().Format("2006-01-02")
	assert.Equal(today, series.Historical[len(series.Historical)-1].Date)
	for i, p := range series.Historical {
		want := time.Now().AddDate(0, 0, -(30 - i)).Format("2006-01-02")
		assert.Equal(want, p.Date)
	}
}

func TestHistorical_RatesWithinBand(t *testing.T) {
	svc := historicalService()

	series, err := svc.Historical("USD", "EUR", 100)
	require.NoError(t, err)

	var minRate, maxRate float64
	for i, p := range series.Historical {
		assert.Greater(t, p.Rate, 0.0)
		if i == 0 || p.Rate < minRate {
			minRate = p.Rate
		}
		if i == 0 || p.Rate > maxRate {
			maxRate = p.Rate
		}
	}

	// Every rate is baseRate*(1±0.05) for one base in [0.5, 2.5), so the
	// whole series fits inside [0.475, 2.625) and the spread around any
	// single base is bounded by 1.05/0.95.
	assert.GreaterOrEqual(t, minRate, 0.5*0.95)
	assert.Less(t, maxRate, 2.5*1.05)
	assert.LessOrEqual(t, maxRate/minRate, 1.05/0.95+1e-4)
}

func TestHistorical_DaysBounds(t *testing.T) {
	svc := historicalService()

	for _, days := range []int{0, -1, 366} {
		_, err := svc.Historical("USD", "EUR", days)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	series, err := svc.Historical("USD", "EUR", 1)
	require.NoError(t, err)
	assert.Len(t, series.Historical, 2)

	series, err = svc.Historical("USD", "EUR", 365)
	require.NoError(t, err)
	assert.Len(t, series.Historical, 366)
}

func TestHistorical_BadCodes(t *testing.T) {
	svc := historicalService()

	_, err := svc.Historical("dollar", "EUR", 30)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.Historical("USD", "12X", 30)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
