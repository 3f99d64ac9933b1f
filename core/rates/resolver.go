// Package rates - Nearest-tier resolution
package rates

import "github.com/shopspring/decimal"

// Resolve returns the rate for a guest count using the
// exact-or-next-tier-up policy:
//
//  1. an exact tier match returns that tier's rate;
//  2. otherwise the smallest tier >= guests applies ("round up to the
//     next published tier");
//  3. a guest count above every published tier clamps to the largest
//     tier's rate rather than erroring.
//
// The resolver assumes a positive guest count; validating that is the
// caller's job. Same input always yields the same output.
func Resolve(guests int, table RateTable) decimal.Decimal {
	// Tiers are sorted ascending, so the first tier at or above the
	// guest count is the applicable one.
	for _, tier := range table.tiers {
		if tier.Guests >= guests {
			return tier.Rate
		}
	}
	return table.tiers[len(table.tiers)-1].Rate
}
