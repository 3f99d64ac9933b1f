// Package api - Thin, deterministic API layer
// The API is only responsible for input ingestion, engine orchestration,
// and output serialization. It never performs pricing logic.
package api

import (
	"github.com/shopspring/decimal"

	core "eventquote/core/types"
)

// QuoteRequest is the flat wire input to POST /quote. The mapper folds
// the family-specific fields into the engine's tagged structure variant.
type QuoteRequest struct {
	// Event
	EventType       string `json:"eventType"`
	CustomEventType string `json:"customEventType,omitempty"`
	NumberOfGuests  int    `json:"numberOfGuests"`
	Duration        int    `json:"duration,omitempty"`

	// Structure family and family-specific fields
	TentType          string `json:"tentType,omitempty"`
	GardenCottageSize string `json:"gardenCottageSize,omitempty"`
	PagodaSize        string `json:"pagodaSize,omitempty"`
	PagodaWallType    string `json:"pagodaWallType,omitempty"`
	RondoStructure    string `json:"rondoStructure,omitempty"`
	RondoSegments     int    `json:"rondoSegments,omitempty"`
	ApseStructure     string `json:"apseStructure,omitempty"`
	ApseSegments      int    `json:"apseSegments,omitempty"`

	// Flooring
	FlooringType string          `json:"flooringType,omitempty"`
	FlooringArea decimal.Decimal `json:"flooringArea,omitempty"`

	// Partitions and accessories
	Partitions          []PartitionInput `json:"partitions,omitempty"`
	AccessoryQuantities map[string]int   `json:"accessoryQuantities,omitempty"`

	// Contact and event metadata, passed through unmodified
	ContactName  string `json:"contactName,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	EventDate    string `json:"eventDate,omitempty"`
	Venue        string `json:"venue,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// PartitionInput is one requested partition line
type PartitionInput struct {
	Width    string `json:"width"`
	WallType string `json:"wallType"`
	Quantity int    `json:"quantity"`
}

// QuoteResponse is the envelope returned by POST /quote
type QuoteResponse struct {
	Success bool   `json:"success"`
	Quote   *Quote `json:"quote,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Quote is the wire representation of a quotation
type Quote struct {
	QuoteID              string             `json:"quoteId"`
	ContactInfo          core.ContactInfo   `json:"contactInfo"`
	EventDetails         core.EventDetails  `json:"eventDetails"`
	StructureSummary     string             `json:"structureSummary"`
	RecommendedStructure string             `json:"recommendedStructure"`
	RecommendedSpecs     core.StructureSpec `json:"recommendedSpecs"`
	LineItems            []core.LineItem    `json:"lineItems"`
	Subtotal             decimal.Decimal    `json:"subtotal"`
	VAT                  decimal.Decimal    `json:"vat"`
	Total                decimal.Decimal    `json:"total"`
	Currency             string             `json:"currency"`
	Warnings             []string           `json:"warnings,omitempty"`

	// InputHash is a deterministic hash of the canonical request, for
	// quote reproducibility audits
	InputHash string `json:"inputHash,omitempty"`
}
