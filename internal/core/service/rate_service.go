package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

// RateService resolves exchange rates from a provider and falls back to
// configured static rates when the provider cannot answer.
type RateService struct {
	provider ports.RateProvider
	fallback map[string]float64
	log      zerolog.Logger
	now      func() time.Time
}

// NewRateService builds a RateService. fallback is keyed "FROM_TO"; provider
// may be nil, in which case only fallback rates are served.
func NewRateService(provider ports.RateProvider, fallback map[string]float64, log zerolog.Logger) *RateService {
	normalized := make(map[string]float64, len(fallback))
	for k, v := range fallback {
		if v > 0 {
			normalized[strings.ToUpper(strings.TrimSpace(k))] = v
		}
	}
	return &RateService{provider: provider, fallback: normalized, log: log, now: time.Now}
}

func (s *RateService) Rate(ctx context.Context, from, to string) (domain.Rate, error) {
	from, to, err := normalizePair(from, to)
	if err != nil {
		return domain.Rate{}, err
	}
	if from == to {
		return domain.Rate{From: from, To: to, Value: 1, Source: domain.RateLive, FetchedAt: s.now().UTC()}, nil
	}

	if s.provider != nil {
		rate, err := s.provider.Rate(ctx, from, to)
		if err == nil {
			return rate, nil
		}
		if !errors.Is(err, domain.ErrRateUnavailable) {
			s.log.Warn().Err(err).Str("from", from).Str("to", to).Msg("rate provider failed")
		}
	}

	if v, ok := s.fallbackRate(from, to); ok {
		return domain.Rate{From: from, To: to, Value: v, Source: domain.RateFallback, FetchedAt: s.now().UTC()}, nil
	}
	return domain.Rate{}, domain.ErrRateUnavailable
}

func (s *RateService) fallbackRate(from, to string) (float64, bool) {
	if v, ok := s.fallback[from+"_"+to]; ok {
		return v, true
	}
	if v, ok := s.fallback[to+"_"+from]; ok {
		return 1 / v, true
	}
	return 0, false
}

func normalizePair(from, to string) (string, string, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if !isCurrencyCode(from) || !isCurrencyCode(to) {
		return "", "", domain.Validation("from and to must be 3-letter currency codes")
	}
	return from, to, nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
