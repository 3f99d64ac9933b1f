// Package capacity - Structure sizing tests
package capacity

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRecommendBanquetHundredGuests(t *testing.T) {
	// 100 guests at 1.21 sqm each need 121 sqm. The 10m Rondo (115 sqm)
	// is too small, so the 15m Rondo (177 sqm) is the pick.
	spec, err := Recommend("Banquet", 100)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if spec.SizeLabel != "15m Rondo" {
		t.Errorf("SizeLabel = %q, want \"15m Rondo\"", spec.SizeLabel)
	}
	if !spec.AreaSqm.Equal(decimal.NewFromInt(177)) {
		t.Errorf("AreaSqm = %s, want 177", spec.AreaSqm)
	}
	if !strings.Contains(spec.Reasoning, "121") {
		t.Errorf("reasoning should report the 121 sqm requirement: %q", spec.Reasoning)
	}
	// ceil((177-121)/121*100) = 47
	if !strings.Contains(spec.Reasoning, "47% surplus") {
		t.Errorf("reasoning should report 47%% surplus: %q", spec.Reasoning)
	}
}

func TestRecommendSmallestSufficientRung(t *testing.T) {
	// 10 cocktail guests need 8 sqm; the 3m Garden Cottage (9 sqm) is
	// the smallest rung that covers it.
	spec, err := Recommend("Cocktail", 10)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if spec.SizeLabel != "3m Garden Cottage" {
		t.Errorf("SizeLabel = %q, want \"3m Garden Cottage\"", spec.SizeLabel)
	}
}

func TestRecommendUnknownStyleDefaultsToOneSqm(t *testing.T) {
	spec, err := Recommend("Fire Juggling Convention", 100)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	// 100 guests x 1.0 sqm fits the 10m Rondo (115 sqm).
	if spec.SizeLabel != "10m Rondo" {
		t.Errorf("SizeLabel = %q, want \"10m Rondo\"", spec.SizeLabel)
	}
}

func TestRecommendExhibitionUsesBoothFactor(t *testing.T) {
	// 10 booth-equivalent units x 18 sqm = 180 sqm, above the 15m Rondo.
	spec, err := Recommend("Exhibition", 10)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if spec.SizeLabel != "20m Rondo" {
		t.Errorf("SizeLabel = %q, want \"20m Rondo\"", spec.SizeLabel)
	}
}

func TestRecommendExtendsAboveTopRung(t *testing.T) {
	// 600 banquet guests need 726 sqm, above the 500 sqm top rung.
	// Deficit 226 sqm at 100 sqm per 5m segment rounds up to 3 segments.
	spec, err := Recommend("Banquet", 600)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if spec.SizeLabel != "25m Apse + 15m extension" {
		t.Errorf("SizeLabel = %q, want \"25m Apse + 15m extension\"", spec.SizeLabel)
	}
	if !spec.AreaSqm.Equal(decimal.NewFromInt(800)) {
		t.Errorf("AreaSqm = %s, want 800", spec.AreaSqm)
	}
	// ceil((800-726)/726*100) = 11
	if !strings.Contains(spec.Reasoning, "11% surplus") {
		t.Errorf("reasoning should report 11%% surplus: %q", spec.Reasoning)
	}
}

func TestRecommendNeverFailsBelowCap(t *testing.T) {
	// The ladder's top rung is not a hard ceiling: every guest count up
	// to the extension cap gets some recommendation.
	for guests := 1; guests <= 3000; guests += 97 {
		if _, err := Recommend("Banquet", guests); err != nil {
			t.Fatalf("Recommend(Banquet, %d) failed: %v", guests, err)
		}
	}
}

func TestRecommendRejectsAbsurdGuestCounts(t *testing.T) {
	// 10000 banquet guests need 12100 sqm, 116 segments beyond the top
	// rung. That exceeds the default cap and is rejected as input.
	if _, err := Recommend("Banquet", 10000); err == nil {
		t.Fatal("expected an error above the extension cap")
	}

	if _, err := RecommendWithLimit("Banquet", 600, 2); err == nil {
		t.Fatal("expected an error when 3 segments are needed but 2 allowed")
	}
	if _, err := RecommendWithLimit("Banquet", 600, 3); err != nil {
		t.Fatalf("3 segments within a limit of 3 should succeed: %v", err)
	}
}

func TestRecommendDeterminism(t *testing.T) {
	first, err := Recommend("Classroom", 85)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	second, err := Recommend("Classroom", 85)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if first.SizeLabel != second.SizeLabel || first.Reasoning != second.Reasoning ||
		!first.AreaSqm.Equal(second.AreaSqm) {
		t.Errorf("recommendation not deterministic: %+v vs %+v", first, second)
	}
}
