// Package config provides YAML-based city catalog loading for Trash Hero.
package config

import (
	"errors"
	"fmt"
)

// ErrUnknownCity is returned when a city id is not part of the catalog.
var ErrUnknownCity = errors.New("config: unknown city")

// City contains the immutable per-session parameters of a playable city.
type City struct {
	ID               string   `yaml:"id" json:"id"`
	Name             string   `yaml:"name" json:"name"`
	LocalName        string   `yaml:"local_name" json:"local_name,omitempty"`
	TrashCount       int      `yaml:"trash_count" json:"trash_count"`             // Litter spawned at start, also the star goal
	WindMultiplier   float64  `yaml:"wind_multiplier" json:"wind_multiplier"`     // Scales the phase wind magnitude
	AttackMultiplier float64  `yaml:"attack_multiplier" json:"attack_multiplier"` // Scales hostile litter speed
	BgColor          string   `yaml:"bg_color" json:"bg_color,omitempty"`
	AccentColor      string   `yaml:"accent_color" json:"accent_color,omitempty"`
	Landmarks        []string `yaml:"landmarks" json:"landmarks,omitempty"`
}

// Validate reports whether the city can drive a session.
func (c City) Validate() error {
	switch {
	case c.ID == "":
		return errors.New("config: city has no id")
	case c.TrashCount <= 0:
		return fmt.Errorf("config: city %q: trash_count must be positive", c.ID)
	case c.WindMultiplier < 0:
		return fmt.Errorf("config: city %q: wind_multiplier must not be negative", c.ID)
	case c.AttackMultiplier <= 0:
		return fmt.Errorf("config: city %q: attack_multiplier must be positive", c.ID)
	}
	return nil
}

// Catalog is the ordered list of cities. Order defines unlock progression.
type Catalog struct {
	Cities []City `yaml:"cities" json:"cities"`
}

// City looks up a city by id.
func (c Catalog) City(id string) (City, error) {
	for _, city := range c.Cities {
		if city.ID == id {
			return city, nil
		}
	}
	return City{}, fmt.Errorf("%w: %q", ErrUnknownCity, id)
}

// Index returns the position of the city in unlock order, or -1.
func (c Catalog) Index(id string) int {
	for i, city := range c.Cities {
		if city.ID == id {
			return i
		}
	}
	return -1
}

// Next returns the city unlocked by earning a star in id.
func (c Catalog) Next(id string) (City, bool) {
	i := c.Index(id)
	if i < 0 || i+1 >= len(c.Cities) {
		return City{}, false
	}
	return c.Cities[i+1], true
}

// First returns the city unlocked by default.
func (c Catalog) First() City {
	if len(c.Cities) == 0 {
		return City{}
	}
	return c.Cities[0]
}

// IDs returns city ids in unlock order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c.Cities))
	for i, city := range c.Cities {
		ids[i] = city.ID
	}
	return ids
}

// Validate checks every city and rejects duplicate ids.
func (c Catalog) Validate() error {
	if len(c.Cities) == 0 {
		return errors.New("config: catalog has no cities")
	}
	seen := make(map[string]bool, len(c.Cities))
	for _, city := range c.Cities {
		if err := city.Validate(); err != nil {
			return err
		}
		if seen[city.ID] {
			return fmt.Errorf("config: duplicate city %q", city.ID)
		}
		seen[city.ID] = true
	}
	return nil
}
