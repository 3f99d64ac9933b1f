// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"eventquote/core/output"
	"eventquote/core/quote"
	core "eventquote/core/types"
	"eventquote/internal/config"
)

var outputFormat string

// quoteRequestFile is the JSON shape accepted by `eventquote quote`.
// It mirrors the wire format of POST /quote.
type quoteRequestFile struct {
	EventType       string `json:"eventType"`
	CustomEventType string `json:"customEventType"`
	NumberOfGuests  int    `json:"numberOfGuests"`
	Duration        int    `json:"duration"`

	TentType          string `json:"tentType"`
	GardenCottageSize string `json:"gardenCottageSize"`
	PagodaSize        string `json:"pagodaSize"`
	PagodaWallType    string `json:"pagodaWallType"`
	RondoStructure    string `json:"rondoStructure"`
	RondoSegments     int    `json:"rondoSegments"`
	ApseStructure     string `json:"apseStructure"`
	ApseSegments      int    `json:"apseSegments"`

	FlooringType string          `json:"flooringType"`
	FlooringArea decimal.Decimal `json:"flooringArea"`

	Partitions []struct {
		Width    string `json:"width"`
		WallType string `json:"wallType"`
		Quantity int    `json:"quantity"`
	} `json:"partitions"`
	AccessoryQuantities map[string]int `json:"accessoryQuantities"`

	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	EventDate    string `json:"eventDate"`
	Venue        string `json:"venue"`
}

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote [request.json]",
	Short: "Produce an itemized quote from a JSON request file",
	Long: `Read a quotation request from a JSON file and print the itemized quote.

Examples:
  eventquote quote request.json
  eventquote quote --format json request.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	var file quoteRequestFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse request file: %w", err)
	}

	req := toEngineRequest(&file)

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

	result, err := composer.Compose(req)
	if err != nil {
		return err
	}

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	return output.ForFormat(format).Render(os.Stdout, result)
}

func toEngineRequest(file *quoteRequestFile) *core.QuoteRequest {
	req := &core.QuoteRequest{
		EventType:       core.EventType(file.EventType),
		CustomEventType: file.CustomEventType,
		Guests:          file.NumberOfGuests,
		DurationDays:    file.Duration,
		Accessories:     file.AccessoryQuantities,
		Contact: core.ContactInfo{
			Name:  file.ContactName,
			Phone: file.ContactPhone,
		},
		Event: core.EventDetails{
			Date:  file.EventDate,
			Venue: file.Venue,
		},
	}

	switch core.StructureFamily(file.TentType) {
	case core.StructureGardenCottage:
		req.Structure = &core.StructureSelection{
			Family:        core.StructureGardenCottage,
			GardenCottage: &core.GardenCottageSelection{Size: file.GardenCottageSize},
		}
	case core.StructurePagoda:
		req.Structure = &core.StructureSelection{
			Family: core.StructurePagoda,
			Pagoda: &core.PagodaSelection{
				Size:     file.PagodaSize,
				WallType: toWallType(file.PagodaWallType),
			},
		}
	case core.StructureRondo:
		req.Structure = &core.StructureSelection{
			Family: core.StructureRondo,
			Rondo:  &core.ModularSelection{Structure: file.RondoStructure, Segments: file.RondoSegments},
		}
	case core.StructureApse:
		req.Structure = &core.StructureSelection{
			Family: core.StructureApse,
			Apse:   &core.ModularSelection{Structure: file.ApseStructure, Segments: file.ApseSegments},
		}
	}

	if file.FlooringType != "" && file.FlooringArea.IsPositive() {
		req.Flooring = &core.FlooringSelection{
			Type:    file.FlooringType,
			AreaSqm: file.FlooringArea,
		}
	}

	for _, p := range file.Partitions {
		req.Partitions = append(req.Partitions, core.PartitionRequest{
			Width:    p.Width,
			WallType: toWallType(p.WallType),
			Quantity: p.Quantity,
		})
	}

	return req
}

func toWallType(s string) core.WallType {
	if s == string(core.WallHard) {
		return core.WallHard
	}
	return core.WallSoft
}
