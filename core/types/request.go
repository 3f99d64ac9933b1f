// Package types - Quote request model
// The engine treats the request as a read-only value. Structure families
// are a tagged variant: exactly one family payload is set, discriminated
// by Family, instead of the flat optional-field soup of the wire format.
package types

import "github.com/shopspring/decimal"

// StructureFamily identifies one of the mutually exclusive structure categories
type StructureFamily string

const (
	// StructureGardenCottage is the enclosed small structure family
	StructureGardenCottage StructureFamily = "gardenCottage"

	// StructurePagoda is the mid-size family with a wall-type choice
	StructurePagoda StructureFamily = "pagoda"

	// StructureRondo is the large modular half-dome family
	StructureRondo StructureFamily = "rondo"

	// StructureApse is the large modular A-frame family
	StructureApse StructureFamily = "apse"
)

// GardenCottageSelection selects an enclosed small structure by size label
type GardenCottageSelection struct {
	Size string
}

// PagodaSelection selects a mid-size structure and its wall type
type PagodaSelection struct {
	Size     string
	WallType WallType
}

// ModularSelection selects a large modular structure, optionally with
// extension segments
type ModularSelection struct {
	Structure string
	Segments  int
}

// StructureSelection is the tagged variant over the four families.
// Exactly one payload matching Family is non-nil.
type StructureSelection struct {
	Family        StructureFamily
	GardenCottage *GardenCottageSelection
	Pagoda        *PagodaSelection
	Rondo         *ModularSelection
	Apse          *ModularSelection
}

// FlooringSelection requests flooring of a given type over an area
type FlooringSelection struct {
	Type    string
	AreaSqm decimal.Decimal
}

// PartitionRequest requests internal partitions of a given width label
type PartitionRequest struct {
	Width    string
	WallType WallType
	Quantity int
}

// ContactInfo passes through unmodified into the result
type ContactInfo struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// EventDetails passes through unmodified into the result
type EventDetails struct {
	Date  string `json:"date,omitempty"`
	Venue string `json:"venue,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// QuoteRequest is the validated engine input. The engine never mutates it.
type QuoteRequest struct {
	// EventType is one of the published types, or EventOther
	EventType EventType

	// CustomEventType labels EventOther requests
	CustomEventType string

	// Guests is the expected guest count (positive)
	Guests int

	// DurationDays is the rental duration (positive, default 1)
	DurationDays int

	// Structure is the selected structure family, or nil
	Structure *StructureSelection

	// Flooring is the optional flooring selection
	Flooring *FlooringSelection

	// Partitions are the requested internal partitions (may be empty)
	Partitions []PartitionRequest

	// Accessories maps accessory name to requested quantity.
	// Quantities <= 0 are ignored.
	Accessories map[string]int

	// Contact and Event are descriptive pass-through metadata
	Contact ContactInfo
	Event   EventDetails
}

// StyleLabel returns the event style used for capacity sizing: the event
// type, or the custom label for EventOther
func (r *QuoteRequest) StyleLabel() string {
	if r.EventType == EventOther && r.CustomEventType != "" {
		return r.CustomEventType
	}
	return string(r.EventType)
}

// Duration returns the effective duration in days, defaulting to 1
func (r *QuoteRequest) Duration() int {
	if r.DurationDays < 1 {
		return 1
	}
	return r.DurationDays
}
