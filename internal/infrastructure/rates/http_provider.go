package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/autohaus/dealership/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// HTTPProvider fetches rates from an endpoint answering
// GET {base}?base=FROM with {"rates": {"EUR": 0.92, ...}}.
type HTTPProvider struct {
	endpoint string
	client   *http.Client
}

func NewHTTPProvider(endpoint string, client *http.Client) *HTTPProvider {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPProvider{endpoint: endpoint, client: client}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Rate returns domain.ErrRateUnavailable, wrapped with the cause, on any
// transport, status or decoding failure.
func (p *HTTPProvider) Rate(ctx context.Context, from, to string) (domain.Rate, error) {
	u, err := url.Parse(p.endpoint)
	if err != nil {
		return domain.Rate{}, unavailable("parse endpoint: %v", err)
	}
	q := u.Query()
	q.Set("base", from)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Rate{}, unavailable("build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.Rate{}, unavailable("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Rate{}, unavailable("upstream status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Rate{}, unavailable("decode: %v", err)
	}
	v, ok := body.Rates[to]
	if !ok || v <= 0 {
		return domain.Rate{}, unavailable("no rate for %s/%s", from, to)
	}
	return domain.Rate{From: from, To: to, Value: v, Source: domain.RateLive, FetchedAt: time.Now().UTC()}, nil
}

func unavailable(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrRateUnavailable, fmt.Sprintf(format, args...))
}
