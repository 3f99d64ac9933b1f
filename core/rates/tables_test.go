// Package rates - Published table invariants
package rates

import (
	"testing"

	"eventquote/core/types"
)

func TestSeatingTablesNonEmptyAndSorted(t *testing.T) {
	for _, eventType := range []types.EventType{
		types.EventCocktail, types.EventTheater, types.EventBanquet, types.EventClassroom,
	} {
		table, ok := SeatingTable(eventType)
		if !ok {
			t.Fatalf("no seating table for %s", eventType)
		}
		tiers := table.Tiers()
		if len(tiers) == 0 {
			t.Fatalf("%s table is empty", eventType)
		}
		for i := 1; i < len(tiers); i++ {
			if tiers[i].Guests <= tiers[i-1].Guests {
				t.Errorf("%s tiers not strictly ascending: %d after %d",
					eventType, tiers[i].Guests, tiers[i-1].Guests)
			}
		}
		for _, tier := range tiers {
			if !tier.Rate.IsPositive() {
				t.Errorf("%s tier %d has non-positive rate %s", eventType, tier.Guests, tier.Rate)
			}
		}
	}
}

func TestExhibitionHasNoSeatingTable(t *testing.T) {
	// Exhibition events size by booth area but carry no seating rates.
	if _, ok := SeatingTable(types.EventExhibition); ok {
		t.Error("exhibition unexpectedly has a seating table")
	}
	if _, ok := SeatingTable(types.EventOther); ok {
		t.Error("the Other category must not have a seating table")
	}
}

func TestGardenCottagePublishedSizes(t *testing.T) {
	entry, ok := GardenCottage("3m")
	if !ok {
		t.Fatal("3m garden cottage not published")
	}
	if entry.PVC == nil || entry.Lighting == nil || entry.Drapery == nil {
		t.Fatal("3m garden cottage must price pvc, lighting, and drapery")
	}

	// The 5m size omits drapery entirely; the composer must not emit a
	// zero-priced line for it.
	entry, ok = GardenCottage("5m")
	if !ok {
		t.Fatal("5m garden cottage not published")
	}
	if entry.Drapery != nil {
		t.Error("5m garden cottage unexpectedly prices drapery")
	}

	if _, ok := GardenCottage("7m"); ok {
		t.Error("unpublished 7m size resolved")
	}
}

func TestPartitionPricesBothWallTypes(t *testing.T) {
	entry, ok := Partition("3m")
	if !ok {
		t.Fatal("3m partition not published")
	}
	hard := entry.Price(types.WallHard)
	soft := entry.Price(types.WallSoft)
	if !hard.IsPositive() || !soft.IsPositive() {
		t.Fatalf("3m partition prices must be positive: hard=%s soft=%s", hard, soft)
	}
	if hard.Equal(soft) {
		t.Error("hard and soft wall prices should differ")
	}
}

func TestAccessoryNamesSorted(t *testing.T) {
	names := AccessoryNames()
	if len(names) == 0 {
		t.Fatal("no accessories published")
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Fatalf("accessory names not sorted: %q after %q", names[i], names[i-1])
		}
	}
	for _, name := range names {
		if _, ok := Accessory(name); !ok {
			t.Errorf("listed accessory %q does not resolve", name)
		}
	}
}
