// Package conversion implements the currency conversion engine.
package conversion

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/swiftflow/swiftflow/pkg/currency"
	"github.com/swiftflow/swiftflow/pkg/domain"
	"github.com/swiftflow/swiftflow/pkg/provider"
)

// Result is the outcome of a single conversion. Rate and InverseRate are
// 6-decimal strings; ConvertedAmount is rounded to 2 decimals from the
// unrounded rate, so it is not guaranteed to equal amount times the
// displayed rate. Both rounding paths are part of the contract.
type Result struct {
	Amount          float64   `json:"amount"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	Rate            string    `json:"rate"`
	InverseRate     string    `json:"inverseRate"`
	ConvertedAmount float64   `json:"convertedAmount"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// Rates pairs a fetched table with the time this service assembled it.
type Rates struct {
	Base        string             `json:"base"`
	Date        string             `json:"date"`
	Rates       map[string]float64 `json:"rates"`
	LastUpdated time.Time          `json:"lastUpdated"`
}

// Service is stateless; every call stands alone and triggers at most one
// upstream fetch. Concurrent calls are not deduplicated.
type Service struct {
	rates  provider.ExchangeRateProvider
	logger *slog.Logger
}

func New(rates provider.ExchangeRateProvider, logger *slog.Logger) *Service {
	return &Service{rates: rates, logger: logger}
}

// GetRates fetches the full rate table for a base currency.
func (s *Service) GetRates(ctx context.Context, base string) (*Rates, error) {
	base, err := currency.Normalize(base)
	if err != nil {
		return nil, err
	}
	table, err := s.rates.FetchRates(ctx, base)
	if err != nil {
		return nil, err
	}
	return &Rates{
		Base:        table.Base,
		Date:        table.Date,
		Rates:       table.Rates,
		LastUpdated: time.Now(),
	}, nil
}

// Convert computes amount in `from` expressed in `to`. All preconditions
// are checked before the upstream call.
func (s *Service) Convert(ctx context.Context, amount float64, from, to string) (*Result, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive number", domain.ErrInvalidInput)
	}
	from, err := currency.Normalize(from)
	if err != nil {
		return nil, err
	}
	to, err = currency.Normalize(to)
	if err != nil {
		return nil, err
	}

	table, err := s.rates.FetchRates(ctx, from)
	if err != nil {
		return nil, err
	}
	rate, ok := table.Rates[to]
	if !ok {
		s.logger.Info("target currency missing from rate table", "from", from, "to", to)
		return nil, fmt.Errorf("%w: no rate from %s to %s", domain.ErrUnknownCurrencyPair, from, to)
	}

	return &Result{
		Amount:          amount,
		From:            from,
		To:              to,
		Rate:            strconv.FormatFloat(rate, 'f', 6, 64),
		InverseRate:     strconv.FormatFloat(1/rate, 'f', 6, 64),
		ConvertedAmount: math.Round(amount*rate*100) / 100,
		LastUpdated:     time.Now(),
	}, nil
}
