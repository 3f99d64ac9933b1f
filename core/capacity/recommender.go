// Package capacity - Structure sizing
// Maps an event style and guest count onto a discrete ladder of structure
// sizes. Sizing is advisory: it feeds the quote narrative, never the
// priced line items.
package capacity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"eventquote/core/types"
	"eventquote/internal/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// spaceFactors is the area budgeted per guest for each event style, in
// sqm. Exhibition guests are booth-equivalent units. Unknown styles get
// defaultSpaceFactor.
var spaceFactors = map[string]decimal.Decimal{
	string(types.EventCocktail):   d("0.8"),
	string(types.EventTheater):    d("0.8"),
	string(types.EventBanquet):    d("1.21"),
	string(types.EventClassroom):  d("1.44"),
	string(types.EventExhibition): d("18.0"),
}

var defaultSpaceFactor = d("1.0")

// SpaceFactor returns the per-guest area for an event style
func SpaceFactor(style string) decimal.Decimal {
	if f, ok := spaceFactors[style]; ok {
		return f
	}
	return defaultSpaceFactor
}

// Rung is one discrete structure size on the capacity ladder
type Rung struct {
	// SizeLabel names the structure
	SizeLabel string

	// AreaSqm is the covered floor area
	AreaSqm decimal.Decimal

	// RidgeHeightM and SideHeightM are the fixed heights
	RidgeHeightM decimal.Decimal
	SideHeightM  decimal.Decimal

	// Description is a short narrative of the structure
	Description string
}

// ladder is the fixed ascending capacity ladder. The top rung is never a
// hard ceiling: above it the extension policy takes over.
var ladder = []Rung{
	{"3m Garden Cottage", d("9"), d("2.5"), d("2.0"), "Enclosed garden cottage with PVC shell"},
	{"4m Garden Cottage", d("16"), d("2.8"), d("2.0"), "Enclosed garden cottage with PVC shell"},
	{"5m Pagoda", d("25"), d("3.2"), d("2.3"), "Peaked pagoda with hard or soft walls"},
	{"8m Pagoda", d("64"), d("3.8"), d("2.3"), "Peaked pagoda with hard or soft walls"},
	{"10m Rondo", d("115"), d("5.0"), d("3.0"), "Modular half-dome structure"},
	{"15m Rondo", d("177"), d("6.4"), d("3.5"), "Modular half-dome structure"},
	{"20m Rondo", d("260"), d("7.2"), d("3.8"), "Modular half-dome structure"},
	{"20m Apse", d("400"), d("8.2"), d("4.0"), "Large modular A-frame structure"},
	{"25m Apse", d("500"), d("9.0"), d("4.2"), "Large modular A-frame structure"},
}

// Extension parameters for oversized events: the top rung grows in fixed
// 5-meter length increments, each adding the structure width in area per
// meter of added length.
var (
	extensionStepMeters  = 5
	extensionAreaPerStep = d("100") // 20m width x 5m length

	// DefaultMaxSegments caps the open-ended extension. Guest counts
	// that would need more segments are rejected as implausible input.
	DefaultMaxSegments = 40
)

// Ladder returns the fixed capacity ladder
func Ladder() []Rung {
	out := make([]Rung, len(ladder))
	copy(out, ladder)
	return out
}

// Recommend selects a structure for the event style and guest count,
// using DefaultMaxSegments as the extension cap.
func Recommend(style string, guests int) (types.StructureSpec, error) {
	return RecommendWithLimit(style, guests, DefaultMaxSegments)
}

// RecommendWithLimit selects the smallest ladder rung whose area covers
// the required area (guests x space-per-guest). Above the top rung it
// extends the top structure in 5m increments until the area is covered,
// failing only when more than maxSegments increments would be needed.
func RecommendWithLimit(style string, guests int, maxSegments int) (types.StructureSpec, error) {
	factor := SpaceFactor(style)
	required := decimal.NewFromInt(int64(guests)).Mul(factor)

	for _, rung := range ladder {
		if rung.AreaSqm.GreaterThanOrEqual(required) {
			return types.StructureSpec{
				SizeLabel:    rung.SizeLabel,
				AreaSqm:      rung.AreaSqm,
				RidgeHeightM: rung.RidgeHeightM,
				SideHeightM:  rung.SideHeightM,
				Description:  rung.Description,
				Reasoning:    reasoning(style, guests, factor, required, rung.SizeLabel, rung.AreaSqm),
			}, nil
		}
	}

	// Open-ended extension above the top rung.
	top := ladder[len(ladder)-1]
	deficit := required.Sub(top.AreaSqm)
	segments := int(deficit.Div(extensionAreaPerStep).Ceil().IntPart())
	if segments > maxSegments {
		return types.StructureSpec{}, errors.Newf(errors.TypeCapacity,
			"guest count %d needs %d extension segments, exceeding the %d segment limit",
			guests, segments, maxSegments)
	}

	extendedArea := top.AreaSqm.Add(extensionAreaPerStep.Mul(decimal.NewFromInt(int64(segments))))
	extensionMeters := segments * extensionStepMeters
	label := fmt.Sprintf("%s + %dm extension", top.SizeLabel, extensionMeters)

	return types.StructureSpec{
		SizeLabel:    label,
		AreaSqm:      extendedArea,
		RidgeHeightM: top.RidgeHeightM,
		SideHeightM:  top.SideHeightM,
		Description:  top.Description,
		Reasoning:    reasoning(style, guests, factor, required, label, extendedArea),
	}, nil
}

// reasoning narrates the sizing decision: required area, chosen area,
// and ceil percentage of surplus space.
func reasoning(style string, guests int, factor, required decimal.Decimal, label string, area decimal.Decimal) string {
	surplus := area.Sub(required).Div(required).Mul(d("100")).Ceil().IntPart()
	return fmt.Sprintf(
		"A %s event for %d guests needs about %s sqm (%s sqm per guest). The %s covers %s sqm, leaving %d%% surplus space.",
		style, guests, required.String(), factor.String(), label, area.String(), surplus)
}

// Summary renders a one-line human-readable summary of a recommendation
func Summary(spec types.StructureSpec) string {
	return fmt.Sprintf("Recommended structure: %s (%s sqm, ridge %sm, side %sm)",
		spec.SizeLabel, spec.AreaSqm.String(), spec.RidgeHeightM.String(), spec.SideHeightM.String())
}
