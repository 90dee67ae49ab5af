package tz

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Default is the zone registrations are displayed in.
const Default = "America/Lima"

// Load resolves a IANA zone name, using Default when name is empty.
func Load(name string) (*time.Location, error) {
	if name == "" {
		name = Default
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}
