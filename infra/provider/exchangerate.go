// Package provider holds concrete adapters to external rate services.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/swiftflow/swiftflow/config"
	"github.com/swiftflow/swiftflow/pkg/domain"
	"github.com/swiftflow/swiftflow/pkg/provider"
)

// ExchangeRateAPIProvider fetches rate tables from exchangerate-api.com
// (v4 "latest" endpoint). One GET per call, no caching.
type ExchangeRateAPIProvider struct {
	apiURL     string
	apiKey     string
	maxRetries int
	httpClient *http.Client
	logger     *slog.Logger
}

// NewExchangeRateAPIProvider builds the adapter from config. The HTTP
// timeout bounds every call; retries apply to transport failures only.
func NewExchangeRateAPIProvider(cfg config.ExchangeRate, logger *slog.Logger) *ExchangeRateAPIProvider {
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return &ExchangeRateAPIProvider{
		apiURL:     cfg.ApiUrl,
		apiKey:     cfg.ApiKey,
		maxRetries: retries,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
	}
}

// FetchRates retrieves the rate table for the given base currency. The base
// is not checked against the catalog; an unrecognized code is forwarded and
// the upstream error becomes the failure signal.
func (p *ExchangeRateAPIProvider) FetchRates(ctx context.Context, base string) (*provider.RateTable, error) {
	url := fmt.Sprintf("%s/%s", p.apiURL, base)

	var resp *http.Response
	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
		}
		if p.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+p.apiKey)
		}

		resp, lastErr = p.httpClient.Do(req)
		if lastErr == nil {
			break
		}
		p.logger.Warn("exchange rate request failed", "base", base, "attempt", attempt+1, "error", lastErr)
		if ctx.Err() != nil {
			break
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, lastErr)
	}
	defer resp.Body.Close() //nolint:errcheck

	// The upstream answered; a non-2xx status is not retried.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.logger.Warn("exchange rate API returned non-success status", "base", base, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: upstream status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	var table provider.RateTable
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	if len(table.Rates) == 0 {
		return nil, fmt.Errorf("%w: empty rates payload", domain.ErrProviderUnavailable)
	}

	p.logger.Debug("fetched exchange rates", "base", table.Base, "count", len(table.Rates))
	return &table, nil
}
