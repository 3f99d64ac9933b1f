// Package output provides output formatting for quotations.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"eventquote/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given quotation
	Render(w io.Writer, result *types.QuoteResult) error
}

// ForFormat returns the formatter for a format name, defaulting to CLI
func ForFormat(format string) Formatter {
	if Format(format) == FormatJSON {
		return &JSONFormatter{}
	}
	return &CLIFormatter{ShowReasoning: true}
}

// JSONFormatter renders the quotation as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the quotation as JSON
func (f *JSONFormatter) Render(w io.Writer, result *types.QuoteResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// CLIFormatter renders a human-readable quotation table
type CLIFormatter struct {
	// ShowReasoning includes the sizing narrative
	ShowReasoning bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes a quotation table
func (f *CLIFormatter) Render(w io.Writer, result *types.QuoteResult) error {
	fmt.Fprintf(w, "Quote %s\n", result.QuoteID)
	if result.Contact.Name != "" {
		fmt.Fprintf(w, "For: %s", result.Contact.Name)
		if result.Contact.Phone != "" {
			fmt.Fprintf(w, " (%s)", result.Contact.Phone)
		}
		fmt.Fprintln(w)
	}
	if result.Event.Date != "" || result.Event.Venue != "" {
		fmt.Fprintf(w, "Event: %s %s\n", result.Event.Date, result.Event.Venue)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DESCRIPTION\tQTY\tUNIT\tTOTAL")
	for _, item := range result.LineItems {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			item.Description,
			item.Quantity.String(),
			item.UnitPrice.StringFixed(2),
			item.TotalPrice.StringFixed(2))
	}
	fmt.Fprintln(tw, "\t\t\t")
	fmt.Fprintf(tw, "Subtotal\t\t\t%s\n", result.Subtotal.StringFixed(2))
	fmt.Fprintf(tw, "VAT\t\t\t%s\n", result.VAT.StringFixed(2))
	fmt.Fprintf(tw, "Total (%s)\t\t\t%s\n", result.Currency, result.Total.StringFixed(2))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", result.StructureSummary)
	if f.ShowReasoning {
		fmt.Fprintf(w, "%s\n", result.Recommended.Reasoning)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	return nil
}
