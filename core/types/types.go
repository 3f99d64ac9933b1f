// Package types - Quotation domain types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyKES Currency = "KES"
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// EventType is the style of event being quoted
type EventType string

const (
	EventCocktail   EventType = "Cocktail"
	EventTheater    EventType = "Theater"
	EventBanquet    EventType = "Banquet"
	EventClassroom  EventType = "Classroom"
	EventExhibition EventType = "Exhibition"

	// EventOther carries a caller-supplied custom label and has no
	// published seating rate table.
	EventOther EventType = "Other"
)

// KnownEventTypes lists the published event types
var KnownEventTypes = []EventType{
	EventCocktail,
	EventTheater,
	EventBanquet,
	EventClassroom,
	EventExhibition,
	EventOther,
}

// IsKnown reports whether the event type is one of the published types
func (e EventType) IsKnown() bool {
	for _, t := range KnownEventTypes {
		if e == t {
			return true
		}
	}
	return false
}

// WallType selects between the two partition/pagoda wall variants
type WallType string

const (
	WallHard WallType = "hard"
	WallSoft WallType = "soft"
)

// LineItem is one priced row in the output quote.
// Ordering of line items is part of the observable contract: items appear
// in the order they were composed and are never re-sorted.
type LineItem struct {
	// Description is the human-readable label for the row
	Description string `json:"description"`

	// Quantity is the billed quantity (guests, sqm, units, segments)
	Quantity decimal.Decimal `json:"quantity"`

	// UnitPrice is the per-unit rate
	UnitPrice decimal.Decimal `json:"unitPrice"`

	// TotalPrice is the row total. Duration scaling multiplies this
	// field only, never UnitPrice.
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// NewLineItem builds a line item with TotalPrice = Quantity * UnitPrice
func NewLineItem(description string, quantity, unitPrice decimal.Decimal) LineItem {
	return LineItem{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  quantity.Mul(unitPrice),
	}
}
