package timezones

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Entry is one selectable timezone with its display label.
type Entry struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Catalog is the curated list of timezones offered to users. Any valid IANA
// zone is accepted on writes; the catalog only drives the picker.
type Catalog struct {
	Entries []Entry `json:"entries"`
}

type catalogFile struct {
	Timezones []Entry `yaml:"timezones"`
}

// Default returns the built-in catalog used when no file is configured.
func Default() *Catalog {
	return &Catalog{Entries: []Entry{
		{Value: "UTC", Label: "UTC"},
		{Value: "America/New_York", Label: "New York (Eastern)"},
		{Value: "America/Toronto", Label: "Toronto (Eastern)"},
		{Value: "America/Chicago", Label: "Chicago (Central)"},
		{Value: "America/Denver", Label: "Denver (Mountain)"},
		{Value: "America/Los_Angeles", Label: "Los Angeles (Pacific)"},
		{Value: "America/Vancouver", Label: "Vancouver (Pacific)"},
		{Value: "Europe/London", Label: "London"},
		{Value: "Europe/Paris", Label: "Paris"},
		{Value: "Europe/Berlin", Label: "Berlin"},
		{Value: "Asia/Tokyo", Label: "Tokyo"},
		{Value: "Asia/Seoul", Label: "Seoul"},
		{Value: "Asia/Hong_Kong", Label: "Hong Kong"},
		{Value: "Asia/Singapore", Label: "Singapore"},
		{Value: "Asia/Shanghai", Label: "Shanghai"},
		{Value: "Asia/Kolkata", Label: "Kolkata"},
		{Value: "Australia/Sydney", Label: "Sydney"},
		{Value: "Pacific/Auckland", Label: "Auckland"},
	}}
}

// Load reads a catalog from a YAML file. A missing file falls back to the
// built-in list; a present but invalid file is an error.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read timezone catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse timezone catalog: %w", err)
	}
	if len(file.Timezones) == 0 {
		return Default(), nil
	}

	for _, e := range file.Timezones {
		if _, err := time.LoadLocation(e.Value); err != nil {
			return nil, fmt.Errorf("timezone catalog entry %q: %w", e.Value, err)
		}
	}

	return &Catalog{Entries: file.Timezones}, nil
}

// Contains reports whether the catalog lists the given zone.
func (c *Catalog) Contains(zone string) bool {
	for _, e := range c.Entries {
		if e.Value == zone {
			return true
		}
	}
	return false
}
