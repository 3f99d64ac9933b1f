// Package api - Transport contract tests
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postQuote(t *testing.T, body string) (*httptest.ResponseRecorder, QuoteResponse) {
	t.Helper()
	server := NewServer("test")
	req := httptest.NewRequest(http.MethodPost, "/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	var resp QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return rec, resp
}

func TestQuoteEndpointGardenCottage(t *testing.T) {
	rec, resp := postQuote(t, `{
		"eventType": "Other",
		"customEventType": "Private Dinner",
		"numberOfGuests": 10,
		"tentType": "gardenCottage",
		"gardenCottageSize": "3m",
		"contactName": "Achieng Odhiambo",
		"contactPhone": "+254700000001"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !resp.Success || resp.Quote == nil {
		t.Fatalf("expected a successful envelope, got %+v", resp)
	}

	quote := resp.Quote
	if len(quote.LineItems) != 3 {
		t.Fatalf("got %d line items, want 3", len(quote.LineItems))
	}
	if quote.Subtotal.String() != "5625" {
		t.Errorf("subtotal = %s, want 5625", quote.Subtotal)
	}
	if quote.VAT.String() != "900" {
		t.Errorf("vat = %s, want 900", quote.VAT)
	}
	if quote.Total.String() != "6525" {
		t.Errorf("total = %s, want 6525", quote.Total)
	}
	if quote.ContactInfo.Name != "Achieng Odhiambo" {
		t.Errorf("contact name did not pass through: %q", quote.ContactInfo.Name)
	}
	if quote.RecommendedStructure == "" || quote.RecommendedSpecs.Reasoning == "" {
		t.Error("recommendation missing from response")
	}
	if quote.InputHash == "" {
		t.Error("input hash missing from response")
	}
}

func TestQuoteEndpointInputHashIsStable(t *testing.T) {
	body := `{"eventType": "Theater", "numberOfGuests": 20}`
	_, first := postQuote(t, body)
	_, second := postQuote(t, body)

	if first.Quote == nil || second.Quote == nil {
		t.Fatal("expected successful quotes")
	}
	if first.Quote.InputHash != second.Quote.InputHash {
		t.Errorf("identical requests hashed differently: %s vs %s",
			first.Quote.InputHash, second.Quote.InputHash)
	}
	if first.Quote.Subtotal.String() != "200" || first.Quote.Total.String() != "232" {
		t.Errorf("unexpected totals: subtotal=%s total=%s",
			first.Quote.Subtotal, first.Quote.Total)
	}
}

func TestQuoteEndpointRejectsInvalidJSON(t *testing.T) {
	rec, resp := postQuote(t, `{"eventType": `)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp.Success || resp.Error == "" {
		t.Errorf("expected a failure envelope, got %+v", resp)
	}
}

func TestQuoteEndpointRejectsValidationFailures(t *testing.T) {
	cases := map[string]string{
		"missing guests":  `{"eventType": "Theater"}`,
		"unknown event":   `{"eventType": "Rave", "numberOfGuests": 50}`,
		"bare other":      `{"eventType": "Other", "numberOfGuests": 50}`,
		"bad tent type":   `{"eventType": "Theater", "numberOfGuests": 50, "tentType": "yurt"}`,
		"bad wall type":   `{"eventType": "Theater", "numberOfGuests": 50, "pagodaWallType": "glass"}`,
		"negative guests": `{"eventType": "Theater", "numberOfGuests": -3}`,
	}

	for name, body := range cases {
		rec, resp := postQuote(t, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
		if resp.Success {
			t.Errorf("%s: expected a failure envelope", name)
		}
	}
}

func TestQuoteEndpointSoftSkipsUnknownKeys(t *testing.T) {
	// Stale client state (an unpublished size) must not fail the
	// request; the skip surfaces as a warning.
	rec, resp := postQuote(t, `{
		"eventType": "Theater",
		"numberOfGuests": 20,
		"tentType": "gardenCottage",
		"gardenCottageSize": "7m"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !resp.Success || resp.Quote == nil {
		t.Fatalf("expected success, got %+v", resp)
	}
	if len(resp.Quote.LineItems) != 1 {
		t.Errorf("got %d line items, want only the seating line", len(resp.Quote.LineItems))
	}
	if len(resp.Quote.Warnings) == 0 {
		t.Error("expected a warning for the unpublished size")
	}
}

func TestHealthAndVersionEndpoints(t *testing.T) {
	server := NewServer("test")

	for _, path := range []string{"/health", "/version", "/rates", "/structures"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: status = %d, want 200", path, rec.Code)
		}
	}
}
