package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	maxVenueNameLength = 200
	maxVenueCityLength = 100
)

// Venue is the home ground of an organization. It is immutable; replace it
// wholesale to change it.
type Venue struct {
	name     string
	city     string
	capacity int
}

// NewVenue validates and builds a Venue. Name is required, city is optional
// and capacity must not be negative.
func NewVenue(name, city string, capacity int) (Venue, error) {
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)

	switch {
	case name == "":
		return Venue{}, invalid("venue name is required")
	case utf8.RuneCountInString(name) > maxVenueNameLength:
		return Venue{}, invalid("venue name must be at most %d characters", maxVenueNameLength)
	case utf8.RuneCountInString(city) > maxVenueCityLength:
		return Venue{}, invalid("venue city must be at most %d characters", maxVenueCityLength)
	case capacity < 0:
		return Venue{}, invalid("venue capacity must not be negative")
	}

	return Venue{name: name, city: city, capacity: capacity}, nil
}

func (v Venue) Name() string  { return v.name }
func (v Venue) City() string  { return v.city }
func (v Venue) Capacity() int { return v.capacity }
