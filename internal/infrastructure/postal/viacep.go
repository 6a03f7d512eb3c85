// Package postal contains the ViaCEP adapter for the postal enrichment
// lookup.
package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fcamara/user-address-api/internal/api/metrics"
	"github.com/fcamara/user-address-api/internal/core/domain"
)

// ViaCEPClient resolves Brazilian postal codes against the public ViaCEP
// service. Any outcome other than a well-formed successful response maps to
// domain.ErrZipCodeNotFound: a lookup that did not return is treated the
// same as an unknown code.
type ViaCEPClient struct {
	baseURL string
	client  *http.Client
}

// NewViaCEPClient creates a client for the given base URL (scheme + host,
// no trailing slash required). A non-positive timeout falls back to 5s.
func NewViaCEPClient(baseURL string, timeout time.Duration) *ViaCEPClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ViaCEPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// viaCEPResponse mirrors the ViaCEP JSON payload. The service answers 200
// with {"erro": true} for syntactically valid but unknown codes.
type viaCEPResponse struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// Lookup satisfies ports.PostalGateway.
func (c *ViaCEPClient) Lookup(ctx context.Context, zipCode string) (*domain.PostalAddress, error) {
	start := time.Now()

	endpoint := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, url.PathEscape(zipCode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("viacep request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.PostalLookupDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, domain.ErrZipCodeNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.PostalLookupDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, domain.ErrZipCodeNotFound
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.PostalLookupDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, domain.ErrZipCodeNotFound
	}
	if body.Erro {
		metrics.PostalLookupDuration.WithLabelValues("not_found").Observe(time.Since(start).Seconds())
		return nil, domain.ErrZipCodeNotFound
	}

	metrics.PostalLookupDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	return &domain.PostalAddress{
		Street:   body.Logradouro,
		District: body.Bairro,
		City:     body.Localidade,
		State:    body.UF,
	}, nil
}
