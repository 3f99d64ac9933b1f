// Package api - HTTP surface
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"eventquote/core/capacity"
	"eventquote/core/rates"
	core "eventquote/core/types"
	"eventquote/internal/logging"
)

// Server is the API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server
func NewServer(version string) *Server {
	s := &Server{
		handler: NewHandler(),
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /quote", s.handleQuote)
	s.mux.HandleFunc("GET /rates", s.handleRates)
	s.mux.HandleFunc("GET /structures", s.handleStructures)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleQuote handles POST /quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		s.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	inputHash := computeInputHash(&req)

	result, err := s.handler.Quote(ctx, &req, inputHash)
	if err != nil {
		s.writeError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	logging.Debug("quote request served",
		zap.String("request_id", uuid.NewString()),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	s.writeJSON(w, QuoteResponse{Success: true, Quote: result}, http.StatusOK)
}

// handleRates handles GET /rates: the published tier and accessory tables
func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	seating := map[string][]rates.RateTier{}
	for _, eventType := range core.KnownEventTypes {
		if table, ok := rates.SeatingTable(eventType); ok {
			seating[string(eventType)] = table.Tiers()
		}
	}

	accessories := map[string]string{}
	for _, name := range rates.AccessoryNames() {
		if price, ok := rates.Accessory(name); ok {
			accessories[name] = price.String()
		}
	}

	s.writeJSON(w, map[string]interface{}{
		"seating":     seating,
		"accessories": accessories,
	}, http.StatusOK)
}

// handleStructures handles GET /structures: the capacity ladder
func (s *Server) handleStructures(w http.ResponseWriter, r *http.Request) {
	type rung struct {
		Size        string `json:"size"`
		AreaSqm     string `json:"areaSqm"`
		RidgeHeight string `json:"ridgeHeight"`
		SideHeight  string `json:"sideHeight"`
		Description string `json:"description"`
	}
	var rungs []rung
	for _, step := range capacity.Ladder() {
		rungs = append(rungs, rung{
			Size:        step.SizeLabel,
			AreaSqm:     step.AreaSqm.String(),
			RidgeHeight: step.RidgeHeightM.String(),
			SideHeight:  step.SideHeightM.String(),
			Description: step.Description,
		})
	}
	s.writeJSON(w, map[string]interface{}{"structures": rungs}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "eventquote",
	}, http.StatusOK)
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode response", zap.Error(err))
	}
}

// writeError writes the {success:false, error} envelope
func (s *Server) writeError(w http.ResponseWriter, message string, status int) {
	s.writeJSON(w, QuoteResponse{Success: false, Error: message}, status)
}

// computeInputHash hashes the canonical JSON of a request. Identical
// requests always hash identically, so the hash ties a quotation back to
// its exact input.
func computeInputHash(req *QuoteRequest) string {
	data, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
