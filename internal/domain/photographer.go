package domain

import (
	"strings"

	"gorm.io/gorm"
)

type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilityBooked    Availability = "Booked"
)

// Photographer is a catalog entry. Catalog rows are seeded and read-only at
// runtime; bookings never change Availability.
type Photographer struct {
	ID           string       `json:"id" gorm:"column:id;primaryKey" yaml:"id"`
	Name         string       `json:"name" gorm:"column:name" yaml:"name"`
	Skills       []string     `json:"skills" gorm:"column:skills;serializer:json" yaml:"skills"`
	Availability Availability `json:"availability" gorm:"column:availability" yaml:"availability"`
	ImageRef     string       `json:"image" gorm:"column:image_ref" yaml:"image"`
}

func (Photographer) TableName() string { return "photographers" }

// BeforeSave keeps Skills a set.
func (p *Photographer) BeforeSave(*gorm.DB) error {
	p.Skills = NormalizeSkills(p.Skills)
	return nil
}

// IsAvailable reports whether the catalog lists the photographer as free.
func (p Photographer) IsAvailable() bool {
	return p.Availability == AvailabilityAvailable
}

// NormalizeSkills trims skills and drops blanks and case-insensitive
// duplicates, keeping first-seen order.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
