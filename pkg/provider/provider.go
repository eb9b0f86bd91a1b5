// Package provider defines the boundary to external exchange-rate sources.
package provider

import "context"

// RateTable is one base currency's quotes as returned by the upstream
// service. Tables are fetched fresh per request and never cached.
type RateTable struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// ExchangeRateProvider fetches the rate table for a base currency. The base
// is forwarded verbatim; the provider's own error response is the failure
// signal for unrecognized codes.
type ExchangeRateProvider interface {
	FetchRates(ctx context.Context, base string) (*RateTable, error)
}
