package service

import (
	"context"

	"github.com/kylycht/converter/model"
)

// Rates interface describes
// methods specs for obtaining exchange rates
type Rates interface {
	// GetRates returns the latest rate table
	// relative to the given base currency.
	// Implementations must always return a usable
	// table; a failed live fetch resolves to the
	// static fallback table, never to an error.
	GetRates(ctx context.Context, base string) model.RateTable
}
