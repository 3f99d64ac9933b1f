// Package types - Quote result model
package types

import "github.com/shopspring/decimal"

// StructureSpec is the recommended structure for an event.
// It is advisory only: it never alters the priced line items.
type StructureSpec struct {
	// SizeLabel names the recommended structure (e.g. "15m Rondo",
	// "25m Apse + 10m extension")
	SizeLabel string `json:"size"`

	// AreaSqm is the floor area of the recommended structure
	AreaSqm decimal.Decimal `json:"areaSqm"`

	// RidgeHeightM is the ridge (peak) height in meters
	RidgeHeightM decimal.Decimal `json:"ridgeHeight"`

	// SideHeightM is the side wall height in meters
	SideHeightM decimal.Decimal `json:"sideHeight"`

	// Description is a short narrative of the structure itself
	Description string `json:"description,omitempty"`

	// Reasoning narrates the sizing: required area, chosen area, and
	// percentage of surplus space
	Reasoning string `json:"reasoning"`
}

// QuoteResult is the complete output of one quotation. It is constructed
// fresh per call and owned by the engine; nothing survives the call.
type QuoteResult struct {
	// QuoteID uniquely identifies this quotation
	QuoteID string `json:"quoteId"`

	// Contact and Event echo the request's descriptive metadata
	Contact ContactInfo  `json:"contactInfo"`
	Event   EventDetails `json:"eventDetails"`

	// StructureSummary is a one-line human-readable sizing summary
	StructureSummary string `json:"structureSummary"`

	// Recommended is the advisory structure recommendation
	Recommended StructureSpec `json:"recommendedSpecs"`

	// LineItems in composition order: structure, event style, flooring,
	// partitions, accessories
	LineItems []LineItem `json:"lineItems"`

	// Subtotal is the sum of line item totals
	Subtotal decimal.Decimal `json:"subtotal"`

	// VAT is the tax on the subtotal
	VAT decimal.Decimal `json:"vat"`

	// Total is Subtotal + VAT
	Total decimal.Decimal `json:"total"`

	// Currency is the quoting currency
	Currency Currency `json:"currency"`

	// Warnings lists skipped contributions (unknown sizes, tiers,
	// accessory names). Advisory only; never a failure.
	Warnings []string `json:"warnings,omitempty"`
}
