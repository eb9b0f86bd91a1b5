package conversion

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftflow/swiftflow/pkg/domain"
	"github.com/swiftflow/swiftflow/pkg/provider"
)

type fakeProvider struct {
	table *provider.RateTable
	err   error
	calls int
}

func (f *fakeProvider) FetchRates(_ context.Context, base string) (*provider.RateTable, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.table, nil
}

func newService(f *fakeProvider) *Service {
	return New(f, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func usdTable() *provider.RateTable {
	return &provider.RateTable{
		Base: "USD",
		Date: "2026-08-28",
		Rates: map[string]float64{
			"EUR": 0.9123456,
			"GBP": 0.79,
			"JPY": 147.12,
		},
	}
}

func TestConvert_Scenario(t *testing.T) {
	assert := assert.New(t)
	f := &fakeProvider{table: usdTable()}
	svc := newService(f)

	res, err := svc.Convert(context.Background(), 100, "USD", "EUR")
	require.NoError(t, err)

	assert.Equal("0.912346", res.Rate)
	assert.InDelta(91.23, res.ConvertedAmount, 1e-9)
	assert.Equal(100.0, res.Amount)
	assert.Equal("USD", res.From)
	assert.Equal("EUR", res.To)
	assert.False(res.LastUpdated.IsZero())

	inv, err := strconv.ParseFloat(res.InverseRate, 64)
	require.NoError(t, err)
	assert.InDelta(1/0.9123456, inv, 1e-6)

	assert.Equal(1, f.calls)
}

func TestConvert_RoundingPathsAreIndependent(t *testing.T) {
	// convertedAmount comes from the unrounded rate, not the 6-decimal
	// display rate.
	assert := assert.New(t)
	f := &fakeProvider{table: &provider.RateTable{
		Base:  "USD",
		Rates: map[string]float64{"EUR": 0.9123456789},
	}}
	svc := newService(f)

	res, err := svc.Convert(context.Background(), 1000000, "USD", "EUR")
	require.NoError(t, err)

	assert.Equal("0.912346", res.Rate)
	assert.InDelta(math.Round(1000000*0.9123456789*100)/100, res.ConvertedAmount, 1e-9)

	displayed, _ := strconv.ParseFloat(res.Rate, 64)
	assert.NotEqual(math.Round(1000000*displayed*100)/100, res.ConvertedAmount)
}

func TestConvert_NonPositiveAmount_NoUpstreamCall(t *testing.T) {
	f := &fakeProvider{table: usdTable()}
	svc := newService(f)

	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := svc.Convert(context.Background(), amount, "USD", "EUR")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "must be a positive number")
	}
	assert.Equal(t, 0, f.calls, "no network call may be made for invalid input")
}

func TestConvert_BadCurrencyCode_NoUpstreamCall(t *testing.T) {
	f := &fakeProvider{table: usdTable()}
	svc := newService(f)

	_, err := svc.Convert(context.Background(), 10, "US", "EUR")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.Convert(context.Background(), 10, "USD", "EURO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, f.calls)
}

func TestConvert_NormalizesCase(t *testing.T) {
	f := &fakeProvider{table: usdTable()}
	svc := newService(f)

	res, err := svc.Convert(context.Background(), 1, "usd", "eur")
	require.NoError(t, err)
	assert.Equal(t, "USD", res.From)
	assert.Equal(t, "EUR", res.To)
}

func TestConvert_UnknownPair(t *testing.T) {
	f := &fakeProvider{table: usdTable()}
	svc := newService(f)

	_, err := svc.Convert(context.Background(), 10, "USD", "XYZ")
	assert.ErrorIs(t, err, domain.ErrUnknownCurrencyPair)
	assert.Equal(t, 1, f.calls)
}

func TestConvert_ProviderError(t *testing.T) {
	f := &fakeProvider{err: domain.ErrProviderUnavailable}
	svc := newService(f)

	_, err := svc.Convert(context.Background(), 10, "USD", "EUR")
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestConvert_SwapRoundTrip(t *testing.T) {
	// convert(1,USD,EUR).inverseRate ≈ convert(1,EUR,USD).rate given
	// consistent upstream tables.
	rate := 0.9123456
	forward := &fakeProvider{table: &provider.RateTable{
		Base:  "USD",
		Rates: map[string]float64{"EUR": rate},
	}}
	backward := &fakeProvider{table: &provider.RateTable{
		Base:  "EUR",
		Rates: map[string]float64{"USD": 1 / rate},
	}}

	res1, err := newService(forward).Convert(context.Background(), 1, "USD", "EUR")
	require.NoError(t, err)
	res2, err := newService(backward).Convert(context.Background(), 1, "EUR", "USD")
	require.NoError(t, err)

	inv, _ := strconv.ParseFloat(res1.InverseRate, 64)
	fwd, _ := strconv.ParseFloat(res2.Rate, 64)
	assert.InDelta(t, inv, fwd, 1e-6)
}

func TestConvert_EachCallFetchesFresh(t *testing.T) {
	f := &fakeProvider{table: usdTable()}
	svc := newService(f)

	for range 3 {
		_, err := svc.Convert(context.Background(), 5, "USD", "GBP")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, f.calls, "no caching or coalescing between calls")
}

func TestGetRates(t *testing.T) {
	assert := assert.New(t)
	f := &fakeProvider{table: usdTable()}
	svc := newService(f)

	rates, err := svc.GetRates(context.Background(), "usd")
	require.NoError(t, err)
	assert.Equal("USD", rates.Base)
	assert.Equal("2026-08-28", rates.Date)
	assert.Len(rates.Rates, 3)
	assert.False(rates.LastUpdated.IsZero())

	_, err = svc.GetRates(context.Background(), "not-a-code")
	assert.True(errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(1, f.calls)
}
