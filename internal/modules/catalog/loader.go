package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"photobooking/internal/domain"
)

// File is the seed document shipped in configs/catalog.yaml.
type File struct {
	Photographers []domain.Photographer    `yaml:"photographers"`
	Services      []domain.ServiceOffering `yaml:"services"`
}

// LoadFile parses a catalog seed file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(f.Photographers) == 0 {
		return nil, ErrEmptyCatalog
	}

	for i := range f.Photographers {
		p := &f.Photographers[i]
		if p.ID == "" {
			return nil, fmt.Errorf("catalog %s: photographer %d has no id", path, i)
		}
		p.Skills = domain.NormalizeSkills(p.Skills)
		if p.Availability == "" {
			p.Availability = domain.AvailabilityAvailable
		}
		if p.Availability != domain.AvailabilityAvailable && p.Availability != domain.AvailabilityBooked {
			return nil, fmt.Errorf("catalog %s: photographer %s: unknown availability %q", path, p.ID, p.Availability)
		}
	}
	return &f, nil
}
