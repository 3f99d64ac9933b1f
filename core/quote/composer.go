// Package quote - Quote composition
// Assembles the priced line items for one quotation in a strictly
// ordered pipeline: structure, event style, flooring, partitions,
// accessories, then duration scaling and aggregation. Output order is
// part of the observable contract and items are never re-sorted.
//
// Every unknown-key lookup is a deliberate permissive no-op: the
// contribution is skipped and recorded as a warning, never an error.
// Stale client state must not fail a quotation.
package quote

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"eventquote/core/capacity"
	"eventquote/core/rates"
	"eventquote/core/types"
	"eventquote/internal/errors"
)

// Composer produces quotations. The zero value is not usable; construct
// with NewComposer. Composers are stateless and safe for concurrent use.
type Composer struct {
	// VATRate is the tax rate applied to the subtotal
	VATRate decimal.Decimal

	// Currency is the quoting currency
	Currency types.Currency

	// MaxExtensionSegments caps the structure extension policy
	MaxExtensionSegments int
}

// NewComposer returns a composer with the published defaults: 16% VAT,
// KES, and the default extension cap.
func NewComposer() *Composer {
	return &Composer{
		VATRate:              decimal.RequireFromString("0.16"),
		Currency:             types.CurrencyKES,
		MaxExtensionSegments: capacity.DefaultMaxSegments,
	}
}

// Compose is a convenience wrapper over NewComposer().Compose
func Compose(req *types.QuoteRequest) (*types.QuoteResult, error) {
	return NewComposer().Compose(req)
}

// Compose builds a complete quotation for the request. The request is
// read-only; the result is constructed fresh per call. Deterministic:
// the same request always yields the same line items in the same order
// with the same totals.
func (c *Composer) Compose(req *types.QuoteRequest) (*types.QuoteResult, error) {
	if req == nil {
		return nil, errors.Input("quote request is required")
	}
	if req.Guests < 1 {
		return nil, errors.Newf(errors.TypeInput, "guest count must be positive, got %d", req.Guests)
	}

	var (
		items    []types.LineItem
		warnings []string
	)
	warn := func(format string, args ...interface{}) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	// 1. Structure cost
	if req.Structure != nil {
		items = append(items, c.structureItems(req.Structure, warn)...)
	}

	// 2. Event-style cost
	if req.EventType != types.EventOther {
		if table, ok := rates.SeatingTable(req.EventType); ok {
			rate := rates.Resolve(req.Guests, table)
			items = append(items, types.NewLineItem(
				fmt.Sprintf("%s seating for %d guests", table.Style, req.Guests),
				decimal.NewFromInt(1), rate))
		} else {
			warn("no seating rate table for event type %q", req.EventType)
		}
	}

	// 3. Flooring cost
	if req.Flooring != nil && req.Flooring.Type != "" && req.Flooring.AreaSqm.IsPositive() {
		if perSqm, ok := rates.Flooring(req.Flooring.Type); ok {
			items = append(items, types.NewLineItem(
				fmt.Sprintf("%s flooring (%s sqm)", req.Flooring.Type, req.Flooring.AreaSqm.String()),
				req.Flooring.AreaSqm, perSqm))
		} else {
			warn("unknown flooring type %q skipped", req.Flooring.Type)
		}
	}

	// 4. Partition costs
	for _, p := range req.Partitions {
		if p.Quantity < 1 {
			continue
		}
		entry, ok := rates.Partition(p.Width)
		if !ok {
			warn("unknown partition width %q skipped", p.Width)
			continue
		}
		items = append(items, types.NewLineItem(
			fmt.Sprintf("%s %s wall partition", p.Width, p.WallType),
			decimal.NewFromInt(int64(p.Quantity)), entry.Price(p.WallType)))
	}

	// 5. Accessory costs. Map iteration order is not stable, so names
	// are sorted to keep output reproducible.
	for _, name := range sortedAccessoryNames(req.Accessories) {
		qty := req.Accessories[name]
		if qty <= 0 {
			continue
		}
		unit, ok := rates.Accessory(name)
		if !ok {
			warn("unknown accessory %q skipped", name)
			continue
		}
		items = append(items, types.NewLineItem(name, decimal.NewFromInt(int64(qty)), unit))
	}

	// 6. Duration scaling: multiply every line total (not unit price)
	// once all items are composed. Duration 1 leaves totals untouched.
	if duration := req.Duration(); duration > 1 {
		days := decimal.NewFromInt(int64(duration))
		for i := range items {
			items[i].TotalPrice = items[i].TotalPrice.Mul(days)
		}
	}

	// 7. Aggregate
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice)
	}
	vat := subtotal.Mul(c.VATRate).Round(2)
	total := subtotal.Add(vat)

	// 8. Advisory structure recommendation. Informational only; it
	// never alters the priced line items.
	spec, err := capacity.RecommendWithLimit(req.StyleLabel(), req.Guests, c.MaxExtensionSegments)
	if err != nil {
		return nil, err
	}

	return &types.QuoteResult{
		QuoteID:          uuid.NewString(),
		Contact:          req.Contact,
		Event:            req.Event,
		StructureSummary: capacity.Summary(spec),
		Recommended:      spec,
		LineItems:        items,
		Subtotal:         subtotal,
		VAT:              vat,
		Total:            total,
		Currency:         c.Currency,
		Warnings:         warnings,
	}, nil
}

// structureItems prices the selected structure family. An unknown
// size/variant key contributes no line items.
func (c *Composer) structureItems(sel *types.StructureSelection, warn func(string, ...interface{})) []types.LineItem {
	one := decimal.NewFromInt(1)

	switch sel.Family {
	case types.StructureGardenCottage:
		if sel.GardenCottage == nil {
			return nil
		}
		entry, ok := rates.GardenCottage(sel.GardenCottage.Size)
		if !ok {
			warn("unknown garden cottage size %q: structure skipped", sel.GardenCottage.Size)
			return nil
		}
		// Absent components are omitted entirely, never emitted as
		// zero-priced lines.
		var items []types.LineItem
		if entry.PVC != nil {
			items = append(items, types.NewLineItem(
				fmt.Sprintf("%s Garden Cottage PVC", sel.GardenCottage.Size), one, *entry.PVC))
		}
		if entry.Lighting != nil {
			items = append(items, types.NewLineItem(
				fmt.Sprintf("%s Garden Cottage Lighting", sel.GardenCottage.Size), one, *entry.Lighting))
		}
		if entry.Drapery != nil {
			items = append(items, types.NewLineItem(
				fmt.Sprintf("%s Garden Cottage Drapery", sel.GardenCottage.Size), one, *entry.Drapery))
		}
		return items

	case types.StructurePagoda:
		if sel.Pagoda == nil {
			return nil
		}
		entry, ok := rates.Pagoda(sel.Pagoda.Size)
		if !ok {
			warn("unknown pagoda size %q: structure skipped", sel.Pagoda.Size)
			return nil
		}
		// The wall line is always emitted for the requested type, even
		// at zero. The other wall type is never substituted.
		wallPrice := entry.SoftWall
		if sel.Pagoda.WallType == types.WallHard {
			wallPrice = entry.HardWall
		}
		items := []types.LineItem{types.NewLineItem(
			fmt.Sprintf("%s Pagoda %s walls", sel.Pagoda.Size, sel.Pagoda.WallType), one, wallPrice)}
		if entry.Lighting.IsPositive() {
			items = append(items, types.NewLineItem(
				fmt.Sprintf("%s Pagoda Lighting", sel.Pagoda.Size), one, entry.Lighting))
		}
		if entry.Drapery.IsPositive() {
			items = append(items, types.NewLineItem(
				fmt.Sprintf("%s Pagoda Drapery", sel.Pagoda.Size), one, entry.Drapery))
		}
		return items

	case types.StructureRondo:
		if sel.Rondo == nil {
			return nil
		}
		return modularItems(sel.Rondo, rates.Rondo, rates.RondoSegmentRate(), "rondo", warn)

	case types.StructureApse:
		if sel.Apse == nil {
			return nil
		}
		return modularItems(sel.Apse, rates.Apse, rates.ApseSegmentRate(), "apse", warn)
	}

	warn("unknown structure family %q skipped", sel.Family)
	return nil
}

// modularItems prices a large modular structure: the base unit, plus one
// "5m Segments" line when extension segments were requested.
func modularItems(sel *types.ModularSelection, lookup func(string) (decimal.Decimal, bool), segmentRate decimal.Decimal, family string, warn func(string, ...interface{})) []types.LineItem {
	base, ok := lookup(sel.Structure)
	if !ok {
		warn("unknown %s structure %q: structure skipped", family, sel.Structure)
		return nil
	}
	items := []types.LineItem{types.NewLineItem(sel.Structure, decimal.NewFromInt(1), base)}
	if sel.Segments > 0 {
		items = append(items, types.NewLineItem(
			"5m Segments", decimal.NewFromInt(int64(sel.Segments)), segmentRate))
	}
	return items
}

func sortedAccessoryNames(accessories map[string]int) []string {
	names := make([]string, 0, len(accessories))
	for name := range accessories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
