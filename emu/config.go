package emu

import (
	"encoding/json"
	"fmt"
	"os"
)

// Default memory layout.
const (
	DataRegionName         = "data"
	InstructionRegionName  = "instructions"
	DefaultDataStart       = 0x00000000
	DefaultDataSize        = 0x00000100
	DefaultInstructionBase = 0x00000100
	DefaultInstructionSize = 0x00000080
)

// Config holds the memory layout and the execution switches of the
// emulator.
type Config struct {
	// Regions lists the address regions. Default: a 256-byte data region
	// at 0x0 followed by a 128-byte instruction region at 0x100.
	Regions []RegionConfig `json:"regions"`

	// DataRegion names the region randomized and reported as data memory.
	DataRegion string `json:"data_region"`

	// InstructionRegion names the region programs are loaded into.
	InstructionRegion string `json:"instruction_region"`

	// StrictRegisters treats an R-format instruction with an operand
	// outside the $t/$s windows as undefined. Default: false (warn only).
	StrictRegisters bool `json:"strict_registers"`

	// ConventionalAdd computes rd = rs + rt. Default: false, which keeps
	// the accumulating rd = rd + rs + rt form.
	ConventionalAdd bool `json:"conventional_add"`

	// DiscardLoadResult keeps a loaded word out of the committed register
	// file. The load still reads memory. Default: false.
	DiscardLoadResult bool `json:"discard_load_result"`

	// MaxInstructions bounds a run. 0 means no limit.
	MaxInstructions uint64 `json:"max_instructions"`
}

// DefaultConfig returns a Config with the standard two-region layout.
func DefaultConfig() *Config {
	return &Config{
		Regions: []RegionConfig{
			{Name: DataRegionName, Start: DefaultDataStart, Size: DefaultDataSize},
			{Name: InstructionRegionName, Start: DefaultInstructionBase, Size: DefaultInstructionSize},
		},
		DataRegion:        DataRegionName,
		InstructionRegion: InstructionRegionName,
	}
}

// LoadConfig loads a Config from a JSON file. Fields missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that the layout is usable.
func (c *Config) Validate() error {
	if len(c.Regions) == 0 {
		return fmt.Errorf("regions must not be empty")
	}

	names := make(map[string]bool, len(c.Regions))
	for _, r := range c.Regions {
		if r.Name == "" {
			return fmt.Errorf("region at 0x%X has no name", r.Start)
		}
		if names[r.Name] {
			return fmt.Errorf("duplicate region name %q", r.Name)
		}
		names[r.Name] = true
	}

	if !names[c.DataRegion] {
		return fmt.Errorf("data_region %q is not a region", c.DataRegion)
	}
	if !names[c.InstructionRegion] {
		return fmt.Errorf("instruction_region %q is not a region", c.InstructionRegion)
	}

	if _, err := NewMemory(c.Regions...); err != nil {
		return err
	}

	return nil
}

// Clone returns a deep copy of the Config.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Regions = append([]RegionConfig(nil), c.Regions...)
	return &clone
}
