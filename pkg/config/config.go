// Package config provides the configuration system for featstream.
// It defines a single LoadConfig structure that the loader and the CLI
// share, ensuring consistent configuration across the system.
//
// Example usage:
//
//	cfg := config.NewLoadConfig()
//	cfg.WeightColumn = 1
//	cfg.LabelMapFile = "labels.map"
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"unicode/utf8"

	"github.com/ajitpratap0/featstream/pkg/errors"
)

// Unset marks an optional column role as not configured.
const Unset = -1

// LoadConfig describes how a delimited text dataset should be read.
// Column roles are indices into the header; Unset leaves a role to be
// inferred (label) or absent (weight, name).
type LoadConfig struct {
	// Separator is the single column separator character
	Separator string `yaml:"separator" json:"separator"`
	// LabelColumn is the explicit label column index, or Unset to infer
	LabelColumn int `yaml:"label_column" json:"label_column"`
	// WeightColumn is the example weight column index, or Unset
	WeightColumn int `yaml:"weight_column" json:"weight_column"`
	// NameColumn is the example name column index, or Unset
	NameColumn int `yaml:"name_column" json:"name_column"`
	// LabelMapFile is an optional path to a label map file
	LabelMapFile string `yaml:"label_map_file" json:"label_map_file"`
	// CacheAll materializes every example in memory at load time
	CacheAll bool `yaml:"cache_all" json:"cache_all"`
}

// NewLoadConfig creates a LoadConfig with the default settings:
// tab-separated, all column roles unset, caching enabled.
func NewLoadConfig() *LoadConfig {
	return &LoadConfig{
		Separator:    "\t",
		LabelColumn:  Unset,
		WeightColumn: Unset,
		NameColumn:   Unset,
		CacheAll:     true,
	}
}

// Validate validates the configuration for correctness.
// Range checks against the actual column count happen at load time,
// once the header is known; this catches what can be caught earlier.
func (c *LoadConfig) Validate() error {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return errors.Newf(errors.ErrorTypeConfig, "separator must be exactly one character, got %q", c.Separator)
	}
	if c.LabelColumn < Unset {
		return errors.Newf(errors.ErrorTypeConfig, "label_column must be %d or a non-negative index, got %d", Unset, c.LabelColumn)
	}
	if c.WeightColumn < Unset {
		return errors.Newf(errors.ErrorTypeConfig, "weight_column must be %d or a non-negative index, got %d", Unset, c.WeightColumn)
	}
	if c.NameColumn < Unset {
		return errors.Newf(errors.ErrorTypeConfig, "name_column must be %d or a non-negative index, got %d", Unset, c.NameColumn)
	}
	return nil
}

// SeparatorRune returns the configured separator as a rune.
// Call Validate first; an invalid separator yields the replacement rune.
func (c *LoadConfig) SeparatorRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Separator)
	return r
}

// HasLabelMap returns true if a label map file is configured
func (c *LoadConfig) HasLabelMap() bool {
	return c.LabelMapFile != ""
}
