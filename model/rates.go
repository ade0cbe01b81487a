package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCurrency is returned by Convert when either
// side of the pair is missing from the rate table.
var ErrUnknownCurrency = errors.New("unknown currency")

// RateTable holds the value of each currency
// relative to the table's base currency.
// The base currency itself maps to 1.0.
type RateTable map[string]float64

// static rates relative to USD, used when live data is unavailable
var fallbackRates = RateTable{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.80,
	"JPY": 150.0,
	"INR": 83.0,
	"CAD": 1.35,
	"AUD": 1.55,
}

// Fallback returns the static rate table rebased
// to the given currency. An unknown base is
// rebased against USD instead.
func Fallback(base string) RateTable {
	base = strings.ToUpper(base)

	baseRate, ok := fallbackRates[base]
	if !ok {
		baseRate = fallbackRates["USD"]
	}

	table := make(RateTable, len(fallbackRates))
	for code, rate := range fallbackRates {
		table[code] = rate / baseRate
	}

	return table
}

// Currencies returns the currency codes the fallback
// table guarantees, sorted alphabetically.
func Currencies() []string {
	codes := make([]string, 0, len(fallbackRates))
	for code := range fallbackRates {
		codes = append(codes, code)
	}

	sort.Strings(codes)
	return codes
}

// Convert converts amount from one currency to another
// using the table's rates: amount is moved to the base
// currency first, then to the target.
func (t RateTable) Convert(from, to string, amount float64) (float64, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	if from == to {
		return amount, nil
	}

	fromRate, ok := t[from]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	}

	toRate, ok := t[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, to)
	}

	return amount / fromRate * toRate, nil
}
