package ports

import (
	"context"

	"github.com/autohaus/dealership/internal/core/domain"
)

// RateProvider looks up a conversion factor. Any failure to produce a rate
// is reported as domain.ErrRateUnavailable (possibly wrapped).
type RateProvider interface {
	Rate(ctx context.Context, from, to string) (domain.Rate, error)
}
