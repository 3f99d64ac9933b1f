// Package api - Wire request validation
package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	eventTypes = []interface{}{
		"Cocktail", "Theater", "Banquet", "Classroom", "Exhibition", "Other",
	}
	tentTypes = []interface{}{
		"gardenCottage", "pagoda", "rondo", "apse",
	}
	wallTypes = []interface{}{"hard", "soft"}
)

// Validate checks the wire request before it reaches the engine. The
// engine assumes structurally valid input; everything rejected here
// becomes a {success:false} envelope at the transport layer.
func (r QuoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EventType,
			validation.Required,
			validation.In(eventTypes...)),
		validation.Field(&r.CustomEventType,
			validation.When(r.EventType == "Other", validation.Required)),
		validation.Field(&r.NumberOfGuests,
			validation.Required,
			validation.Min(1)),
		validation.Field(&r.Duration,
			validation.Min(0)),
		validation.Field(&r.TentType,
			validation.In(tentTypes...)),
		validation.Field(&r.PagodaWallType,
			validation.In(wallTypes...)),
		validation.Field(&r.RondoSegments, validation.Min(0)),
		validation.Field(&r.ApseSegments, validation.Min(0)),
		validation.Field(&r.Partitions),
	)
}

// Validate checks one partition line
func (p PartitionInput) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Width, validation.Required),
		validation.Field(&p.WallType, validation.In(wallTypes...)),
		validation.Field(&p.Quantity, validation.Min(0)),
	)
}
