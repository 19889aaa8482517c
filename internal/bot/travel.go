package bot

import (
	"fmt"
	"strings"
)

// Destination pairs a city with its tip.
type Destination struct {
	City string
	Tip  string
}

// UnknownCityError is the guided outcome of a lookup for a city with no tip.
type UnknownCityError struct {
	City  string
	Known []string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("Sorry, I don't have tips for '%s' yet. Try %s!", e.City, joinOr(e.Known))
}

// TravelAdvisor looks up tips from a destination table fixed at construction.
type TravelAdvisor struct {
	Identity

	destinations []Destination
}

// NewTravelAdvisor creates a TravelAdvisor. The order of destinations is kept for display.
func NewTravelAdvisor(name, version string, destinations []Destination) *TravelAdvisor {
	d := make([]Destination, len(destinations))
	copy(d, destinations)

	return &TravelAdvisor{
		Identity:     NewIdentity(name, version),
		destinations: d,
	}
}

// Introduce overrides the default introduction and lists the known cities.
func (t *TravelAdvisor) Introduce() string {
	return fmt.Sprintf(
		"[TravelBot] I am %s. I can suggest locations and tips for: %s",
		t.Name(), strings.Join(t.Destinations(), ", "),
	)
}

// Destinations returns the known city names in table order.
func (t *TravelAdvisor) Destinations() []string {
	cities := make([]string, 0, len(t.destinations))
	for _, d := range t.destinations {
		cities = append(cities, d.City)
	}
	return cities
}

// AdviseFor finds the tip for city ignoring case and surrounding spaces.
// A miss returns *UnknownCityError naming every known city.
func (t *TravelAdvisor) AdviseFor(city string) (Advice, error) {
	want := strings.TrimSpace(city)
	for _, d := range t.destinations {
		if strings.EqualFold(d.City, want) {
			return Advice{City: d.City, Tip: d.Tip}, nil
		}
	}

	return Advice{}, &UnknownCityError{City: city, Known: t.Destinations()}
}

// joinOr renders "a, b, c, or d".
func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return "another city"
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
}
