// Package api - Wire-to-engine mapping
package api

import (
	core "eventquote/core/types"
)

// toEngineRequest folds the flat wire request into the engine's request
// model, turning the optional tent fields into the tagged structure
// variant for the selected family.
func toEngineRequest(r *QuoteRequest) *core.QuoteRequest {
	req := &core.QuoteRequest{
		EventType:       core.EventType(r.EventType),
		CustomEventType: r.CustomEventType,
		Guests:          r.NumberOfGuests,
		DurationDays:    r.Duration,
		Structure:       toStructureSelection(r),
		Accessories:     r.AccessoryQuantities,
		Contact: core.ContactInfo{
			Name:  r.ContactName,
			Phone: r.ContactPhone,
			Email: r.ContactEmail,
		},
		Event: core.EventDetails{
			Date:  r.EventDate,
			Venue: r.Venue,
			Notes: r.Notes,
		},
	}

	if r.FlooringType != "" && r.FlooringArea.IsPositive() {
		req.Flooring = &core.FlooringSelection{
			Type:    r.FlooringType,
			AreaSqm: r.FlooringArea,
		}
	}

	for _, p := range r.Partitions {
		req.Partitions = append(req.Partitions, core.PartitionRequest{
			Width:    p.Width,
			WallType: toWallType(p.WallType),
			Quantity: p.Quantity,
		})
	}

	return req
}

func toStructureSelection(r *QuoteRequest) *core.StructureSelection {
	switch core.StructureFamily(r.TentType) {
	case core.StructureGardenCottage:
		return &core.StructureSelection{
			Family:        core.StructureGardenCottage,
			GardenCottage: &core.GardenCottageSelection{Size: r.GardenCottageSize},
		}
	case core.StructurePagoda:
		return &core.StructureSelection{
			Family: core.StructurePagoda,
			Pagoda: &core.PagodaSelection{
				Size:     r.PagodaSize,
				WallType: toWallType(r.PagodaWallType),
			},
		}
	case core.StructureRondo:
		return &core.StructureSelection{
			Family: core.StructureRondo,
			Rondo: &core.ModularSelection{
				Structure: r.RondoStructure,
				Segments:  r.RondoSegments,
			},
		}
	case core.StructureApse:
		return &core.StructureSelection{
			Family: core.StructureApse,
			Apse: &core.ModularSelection{
				Structure: r.ApseStructure,
				Segments:  r.ApseSegments,
			},
		}
	}
	return nil
}

func toWallType(s string) core.WallType {
	if s == string(core.WallHard) {
		return core.WallHard
	}
	return core.WallSoft
}

// toWireQuote converts an engine result into the wire shape
func toWireQuote(result *core.QuoteResult, inputHash string) *Quote {
	return &Quote{
		QuoteID:              result.QuoteID,
		ContactInfo:          result.Contact,
		EventDetails:         result.Event,
		StructureSummary:     result.StructureSummary,
		RecommendedStructure: result.Recommended.SizeLabel,
		RecommendedSpecs:     result.Recommended,
		LineItems:            result.LineItems,
		Subtotal:             result.Subtotal,
		VAT:                  result.VAT,
		Total:                result.Total,
		Currency:             result.Currency.String(),
		Warnings:             result.Warnings,
		InputHash:            inputHash,
	}
}
