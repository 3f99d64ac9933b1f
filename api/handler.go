// Package api - Engine orchestration
package api

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"eventquote/core/quote"
	core "eventquote/core/types"
	"eventquote/internal/config"
	"eventquote/internal/logging"
)

// Handler orchestrates the quotation engine for the transport layer
type Handler struct {
	composer *quote.Composer
	logger   *zap.Logger
}

// NewHandler creates a handler configured from the global config
func NewHandler() *Handler {
	cfg := config.Get()
	composer := quote.NewComposer()
	if rate, err := decimal.NewFromString(cfg.Quote.VATRate); err == nil {
		composer.VATRate = rate
	}
	if cfg.Quote.Currency != "" {
		composer.Currency = core.Currency(cfg.Quote.Currency)
	}
	if cfg.Quote.MaxExtensionSegments > 0 {
		composer.MaxExtensionSegments = cfg.Quote.MaxExtensionSegments
	}

	return &Handler{
		composer: composer,
		logger:   logging.Logger,
	}
}

// Quote validates, maps, and prices one wire request. All engine errors
// surface to the transport layer, which wraps them in the
// {success:false, error} envelope.
func (h *Handler) Quote(ctx context.Context, req *QuoteRequest, inputHash string) (*Quote, error) {
	result, err := h.composer.Compose(toEngineRequest(req))
	if err != nil {
		return nil, err
	}

	h.logger.Info("quote composed",
		zap.String("quote_id", result.QuoteID),
		zap.String("event_type", req.EventType),
		zap.Int("guests", req.NumberOfGuests),
		zap.Int("line_items", len(result.LineItems)),
		zap.String("total", result.Total.String()),
	)
	if len(result.Warnings) > 0 {
		h.logger.Warn("quote composed with skipped contributions",
			zap.String("quote_id", result.QuoteID),
			zap.Strings("warnings", result.Warnings),
		)
	}

	return toWireQuote(result, inputHash), nil
}
