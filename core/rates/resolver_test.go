// Package rates - Nearest-tier resolution tests
// These tests prove the exact-or-next-tier-up policy and the
// clamp-to-top behavior for guest counts above every published tier.
package rates

import (
	"testing"

	"github.com/shopspring/decimal"

	"eventquote/core/types"
)

func mustTable(t *testing.T, eventType types.EventType) RateTable {
	t.Helper()
	table, ok := SeatingTable(eventType)
	if !ok {
		t.Fatalf("no seating table published for %s", eventType)
	}
	return table
}

func TestResolveExactTier(t *testing.T) {
	table := mustTable(t, types.EventTheater)

	rate := Resolve(20, table)
	if !rate.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Resolve(20) = %s, want 200", rate)
	}
}

func TestResolveRoundsUpToNextTier(t *testing.T) {
	table := mustTable(t, types.EventTheater)

	// 21 guests is above the 20 tier, so the 50 tier applies.
	rate := Resolve(21, table)
	if !rate.Equal(decimal.NewFromInt(450)) {
		t.Errorf("Resolve(21) = %s, want 450 (next tier up)", rate)
	}
}

func TestResolveClampsToTopTier(t *testing.T) {
	// The banquet table's largest key is 160. A guest count of 500 must
	// resolve to the 160 rate, not error.
	table := mustTable(t, types.EventBanquet)

	tiers := table.Tiers()
	top := tiers[len(tiers)-1]
	if top.Guests != 160 {
		t.Fatalf("banquet top tier = %d, want 160", top.Guests)
	}

	rate := Resolve(500, table)
	if !rate.Equal(top.Rate) {
		t.Errorf("Resolve(500) = %s, want top tier rate %s", rate, top.Rate)
	}
}

func TestResolveMonotonicity(t *testing.T) {
	// Rates are non-decreasing as the guest count increases.
	for _, eventType := range []types.EventType{
		types.EventCocktail, types.EventTheater, types.EventBanquet, types.EventClassroom,
	} {
		table := mustTable(t, eventType)
		prev := decimal.Zero
		for guests := 1; guests <= 300; guests++ {
			rate := Resolve(guests, table)
			if rate.LessThan(prev) {
				t.Fatalf("%s: Resolve(%d) = %s decreased from %s", table.Style, guests, rate, prev)
			}
			prev = rate
		}
	}
}

func TestResolveDeterminism(t *testing.T) {
	table := mustTable(t, types.EventCocktail)
	for guests := 1; guests <= 200; guests += 7 {
		first := Resolve(guests, table)
		second := Resolve(guests, table)
		if !first.Equal(second) {
			t.Fatalf("Resolve(%d) not deterministic: %s vs %s", guests, first, second)
		}
	}
}
