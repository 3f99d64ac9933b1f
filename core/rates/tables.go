// Package rates - Published rate tables
// Sparse lookup tables kept as data, not formulas, so historical quotes
// stay exactly reproducible. All tables are authored at build time and
// immutable after process start; accessors hand out copies or read-only
// views only.
package rates

import (
	"sort"

	"github.com/shopspring/decimal"

	"eventquote/core/types"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// RateTier is one published capacity threshold and its rate
type RateTier struct {
	// Guests is the capacity threshold (unique within a table)
	Guests int

	// Rate is the price at this threshold
	Rate decimal.Decimal
}

// RateTable is an ordered sparse mapping from guest tier to rate.
// Tiers are kept sorted ascending by guest count.
type RateTable struct {
	// Style names the table for display and warnings
	Style string

	tiers []RateTier
}

// NewRateTable builds a table from tiers, sorting them ascending.
// Tables are non-empty with unique keys; this is build-time configuration
// data, not runtime-derived.
func NewRateTable(style string, tiers []RateTier) RateTable {
	sorted := make([]RateTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Guests < sorted[j].Guests
	})
	return RateTable{Style: style, tiers: sorted}
}

// Tiers returns the published tiers in ascending order
func (t RateTable) Tiers() []RateTier {
	out := make([]RateTier, len(t.tiers))
	copy(out, t.tiers)
	return out
}

// Len returns the number of published tiers
func (t RateTable) Len() int {
	return len(t.tiers)
}

// seatingTables holds the per-style guest tier tables. Exhibition events
// size structures by booth area but carry no seating rate table.
var seatingTables = map[types.EventType]RateTable{
	types.EventCocktail: NewRateTable("Cocktail", []RateTier{
		{Guests: 20, Rate: d("250")},
		{Guests: 50, Rate: d("550")},
		{Guests: 100, Rate: d("1000")},
		{Guests: 150, Rate: d("1450")},
	}),
	types.EventTheater: NewRateTable("Theater", []RateTier{
		{Guests: 20, Rate: d("200")},
		{Guests: 50, Rate: d("450")},
		{Guests: 100, Rate: d("850")},
		{Guests: 160, Rate: d("1300")},
	}),
	types.EventBanquet: NewRateTable("Banquet", []RateTier{
		{Guests: 20, Rate: d("350")},
		{Guests: 40, Rate: d("650")},
		{Guests: 80, Rate: d("1200")},
		{Guests: 120, Rate: d("1700")},
		{Guests: 160, Rate: d("2200")},
	}),
	types.EventClassroom: NewRateTable("Classroom", []RateTier{
		{Guests: 20, Rate: d("300")},
		{Guests: 40, Rate: d("560")},
		{Guests: 80, Rate: d("1050")},
		{Guests: 120, Rate: d("1500")},
	}),
}

// SeatingTable returns the tier table for an event type, if published
func SeatingTable(eventType types.EventType) (RateTable, bool) {
	t, ok := seatingTables[eventType]
	return t, ok
}

// GardenCottageEntry prices one enclosed small structure size.
// A nil component is not offered at that size and contributes nothing
// (never a zero-priced line).
type GardenCottageEntry struct {
	PVC      *decimal.Decimal
	Lighting *decimal.Decimal
	Drapery  *decimal.Decimal
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

var gardenCottageTable = map[string]GardenCottageEntry{
	"3m": {PVC: dp("5000"), Lighting: dp("500"), Drapery: dp("125")},
	"4m": {PVC: dp("6500"), Lighting: dp("650"), Drapery: dp("175")},
	"5m": {PVC: dp("8000"), Lighting: dp("800")},
}

// GardenCottage returns the price entry for a size label
func GardenCottage(size string) (GardenCottageEntry, bool) {
	e, ok := gardenCottageTable[size]
	return e, ok
}

// PagodaEntry prices one mid-size structure size. HardWall and SoftWall
// are alternatives selected per request; zero-valued lighting or drapery
// means not offered at that size.
type PagodaEntry struct {
	HardWall decimal.Decimal
	SoftWall decimal.Decimal
	Lighting decimal.Decimal
	Drapery  decimal.Decimal
}

var pagodaTable = map[string]PagodaEntry{
	"5m":  {HardWall: d("12000"), SoftWall: d("9000"), Lighting: d("800")},
	"8m":  {HardWall: d("18000"), SoftWall: d("14000"), Lighting: d("1200"), Drapery: d("400")},
	"10m": {HardWall: d("25000"), SoftWall: d("19500"), Lighting: d("1500"), Drapery: d("600")},
}

// Pagoda returns the price entry for a size label
func Pagoda(size string) (PagodaEntry, bool) {
	e, ok := pagodaTable[size]
	return e, ok
}

// Large modular structures price a base unit plus optional 5m extension
// segments at a fixed per-segment rate.
var (
	rondoTable = map[string]decimal.Decimal{
		"Rondo 10m": d("140000"),
		"Rondo 15m": d("200000"),
		"Rondo 20m": d("280000"),
	}
	rondoSegmentRate = d("50000")

	apseTable = map[string]decimal.Decimal{
		"Apse 15m B line": d("240000"),
		"Apse 20m":        d("320000"),
		"Apse 25m":        d("420000"),
	}
	apseSegmentRate = d("60000")
)

// Rondo returns the base price for a rondo structure label
func Rondo(structure string) (decimal.Decimal, bool) {
	p, ok := rondoTable[structure]
	return p, ok
}

// RondoSegmentRate is the per-segment extension rate for rondo structures
func RondoSegmentRate() decimal.Decimal {
	return rondoSegmentRate
}

// Apse returns the base price for an apse structure label
func Apse(structure string) (decimal.Decimal, bool) {
	p, ok := apseTable[structure]
	return p, ok
}

// ApseSegmentRate is the per-segment extension rate for apse structures
func ApseSegmentRate() decimal.Decimal {
	return apseSegmentRate
}

// flooringTable maps flooring type to a per-sqm rate
var flooringTable = map[string]decimal.Decimal{
	"wooden":    d("450"),
	"carpeted":  d("250"),
	"astroTurf": d("180"),
}

// Flooring returns the per-sqm rate for a flooring type
func Flooring(flooringType string) (decimal.Decimal, bool) {
	p, ok := flooringTable[flooringType]
	return p, ok
}

// PartitionEntry prices one partition width in both wall variants
type PartitionEntry struct {
	HardWall decimal.Decimal
	SoftWall decimal.Decimal
}

// Price returns the unit price for the requested wall type
func (e PartitionEntry) Price(wall types.WallType) decimal.Decimal {
	if wall == types.WallHard {
		return e.HardWall
	}
	return e.SoftWall
}

var partitionTable = map[string]PartitionEntry{
	"3m": {HardWall: d("4500"), SoftWall: d("2500")},
	"6m": {HardWall: d("8500"), SoftWall: d("4600")},
	"9m": {HardWall: d("12000"), SoftWall: d("6500")},
}

// Partition returns the price entry for a width label
func Partition(width string) (PartitionEntry, bool) {
	e, ok := partitionTable[width]
	return e, ok
}

// accessoryTable maps accessory name to unit price
var accessoryTable = map[string]decimal.Decimal{
	"Mobile Chiller":   d("15000"),
	"Generator":        d("8500"),
	"Stage Section":    d("3200"),
	"Dance Floor":      d("2800"),
	"Patio Heater":     d("1900"),
	"Mobile Washroom":  d("12000"),
	"LED Uplighter":    d("650"),
	"Walkway Carpet":   d("1100"),
}

// Accessory returns the unit price for an accessory name
func Accessory(name string) (decimal.Decimal, bool) {
	p, ok := accessoryTable[name]
	return p, ok
}

// AccessoryNames returns the published accessory names sorted ascending
func AccessoryNames() []string {
	names := make([]string, 0, len(accessoryTable))
	for name := range accessoryTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
