package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a full catalog from a YAML file. The file replaces the built-in
// defaults wholesale, so it must define every section.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return &c, nil
}

// Validate checks the catalog is usable by the wizard core.
func (c *Catalog) Validate() error {
	if len(c.Regions) == 0 {
		return errors.New("no regions defined")
	}
	if len(c.Jurisdictions) == 0 {
		return errors.New("no jurisdictions defined")
	}
	if len(c.USStates) == 0 {
		return errors.New("no US states defined")
	}
	if len(c.USCompanyTypes) == 0 || len(c.InternationalCompanyTypes) == 0 {
		return errors.New("company type lists incomplete")
	}

	seen := make(map[string]bool, len(c.AddOns))
	for _, def := range c.AddOns {
		if def.ID == "" {
			return errors.New("add-on with empty id")
		}
		if seen[def.ID] {
			return fmt.Errorf("duplicate add-on id %q", def.ID)
		}
		seen[def.ID] = true
	}

	return nil
}
