package provider

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftflow/swiftflow/config"
	"github.com/swiftflow/swiftflow/pkg/domain"
)

func newTestProvider(url string) *ExchangeRateAPIProvider {
	return NewExchangeRateAPIProvider(config.ExchangeRate{
		ApiUrl:      url,
		HTTPTimeout: 2 * time.Second,
		MaxRetries:  0,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFetchRates_Success(t *testing.T) {
	assert := assert.New(t)
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"base":"USD","date":"2026-08-28","rates":{"EUR":0.91,"GBP":0.79}}`)
	}))
	defer srv.Close()

	table, err := newTestProvider(srv.URL).FetchRates(context.Background(), "USD")
	require.NoError(t, err)

	assert.Equal("/USD", gotPath)
	assert.Equal("USD", table.Base)
	assert.Equal("2026-08-28", table.Date)
	assert.Equal(0.91, table.Rates["EUR"])
}

func TestFetchRates_ForwardsBaseVerbatim(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"base":"ZZZ","date":"2026-08-28","rates":{"USD":1.0}}`)
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).FetchRates(context.Background(), "ZZZ")
	require.NoError(t, err)
	assert.Equal(t, "/ZZZ", gotPath)
}

func TestFetchRates_NonSuccessStatus(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewExchangeRateAPIProvider(config.ExchangeRate{
		ApiUrl:      srv.URL,
		HTTPTimeout: 2 * time.Second,
		MaxRetries:  3,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := p.FetchRates(context.Background(), "USD")
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	assert.Equal(t, 1, calls, "non-2xx responses are not retried")
}

func TestFetchRates_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).FetchRates(context.Background(), "USD")
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestFetchRates_EmptyRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"base":"USD","date":"2026-08-28","rates":{}}`)
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).FetchRates(context.Background(), "USD")
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestFetchRates_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	_, err := newTestProvider(srv.URL).FetchRates(context.Background(), "USD")
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestFetchRates_SendsApiKeyHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"base":"USD","date":"2026-08-28","rates":{"EUR":0.91}}`)
	}))
	defer srv.Close()

	p := NewExchangeRateAPIProvider(config.ExchangeRate{
		ApiUrl:      srv.URL,
		ApiKey:      "secret-key",
		HTTPTimeout: 2 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := p.FetchRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-key", gotAuth)
}
