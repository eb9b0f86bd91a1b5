package conversion

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/swiftflow/swiftflow/pkg/currency"
	"github.com/swiftflow/swiftflow/pkg/domain"
)

// HistoricalPoint is one synthetic daily rate.
type HistoricalPoint struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// HistoricalSeries is a generated series of daily rates ending today.
type HistoricalSeries struct {
	From       string            `json:"from"`
	To         string            `json:"to"`
	Period     string            `json:"period"`
	Historical []HistoricalPoint `json:"historical"`
}

// MaxHistoricalDays bounds the series length.
const MaxHistoricalDays = 365

// Historical generates days+1 points (day 0 is today). The data is
// synthetic: one base rate is drawn in [0.5, 2.5) per call and each day
// applies an independent perturbation in [-5%, +5%). There is no fixed
// seed, so repeated calls produce different series. This stands in for a
// real historical feed and must never be presented as market data.
func (s *Service) Historical(from, to string, days int) (*HistoricalSeries, error) {
	from, err := currency.Normalize(from)
	if err != nil {
		return nil, err
	}
	to, err = currency.Normalize(to)
	if err != nil {
		return nil, err
	}
	if days < 1 || days > MaxHistoricalDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", domain.ErrInvalidInput, MaxHistoricalDays)
	}

	baseRate := 0.5 + rand.Float64()*2
	today := time.Now()
	points := make([]HistoricalPoint, 0, days+1)
	for i := days; i >= 0; i-- {
		fluctuation := (rand.Float64() - 0.5) * 0.1
		rate := baseRate * (1 + fluctuation)
		points = append(points, HistoricalPoint{
			Date: today.AddDate(0, 0, -i).Format("2006-01-02"),
			Rate: math.Round(rate*1e6) / 1e6,
		})
	}

	return &HistoricalSeries{
		From:       from,
		To:         to,
		Period:     fmt.Sprintf("%d days", days),
		Historical: points,
	}, nil
}
