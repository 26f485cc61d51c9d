package game

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// MaxSeats is the fixed cap on total seats at the table.
const MaxSeats = 6

// Config is the table configuration loaded from an HCL file.
type Config struct {
	Table TableSettings `hcl:"table,block"`
}

// TableSettings contains table-level configuration.
type TableSettings struct {
	Seats          int    `hcl:"seats,optional"`
	StartingChips  int    `hcl:"starting_chips,optional"`
	RaiseThreshold int    `hcl:"raise_threshold,optional"`
	RevealDelaySec int    `hcl:"reveal_delay,optional"`
	ShowdownDelay  int    `hcl:"showdown_delay,optional"`
	SavePath       string `hcl:"save_path,optional"`
}

// DefaultConfig returns the default table configuration.
func DefaultConfig() *Config {
	return &Config{
		Table: TableSettings{
			Seats:          MaxSeats,
			StartingChips:  1000,
			RaiseThreshold: DefaultRaiseThreshold,
			RevealDelaySec: 1,
			ShowdownDelay:  2,
			SavePath:       "poker_game_state.txt",
		},
	}
}

// LoadConfig loads table configuration from an HCL file. A missing file
// yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultConfig().Table
	if config.Table.Seats == 0 {
		config.Table.Seats = defaults.Seats
	}
	if config.Table.StartingChips == 0 {
		config.Table.StartingChips = defaults.StartingChips
	}
	if config.Table.RaiseThreshold == 0 {
		config.Table.RaiseThreshold = defaults.RaiseThreshold
	}
	if config.Table.SavePath == "" {
		config.Table.SavePath = defaults.SavePath
	}

	return &config, nil
}

// Validate validates the table configuration.
func (c *Config) Validate() error {
	if c.Table.Seats < 2 || c.Table.Seats > MaxSeats {
		return fmt.Errorf("seats must be between 2 and %d, got %d", MaxSeats, c.Table.Seats)
	}
	if c.Table.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be positive, got %d", c.Table.StartingChips)
	}
	if c.Table.RaiseThreshold < 0 {
		return fmt.Errorf("raise threshold must not be negative, got %d", c.Table.RaiseThreshold)
	}
	if c.Table.RevealDelaySec < 0 || c.Table.ShowdownDelay < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	return nil
}
