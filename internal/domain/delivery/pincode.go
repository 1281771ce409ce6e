// Package delivery classifies postal codes against the serviceable
// delivery areas. Rentimade currently fulfils orders in two cities;
// everything here is static data plus pure lookups.
package delivery

import "strings"

type ServiceArea struct {
	City     string
	Pincodes []string
}

// Pincodes of the supported delivery areas. A pincode belongs to at
// most one city.
var serviceAreas = []ServiceArea{
	{
		City: "Khargone",
		Pincodes: []string{
			"451001", "451111", "451113", "451115", "451220",
			"451224", "451228", "451331", "451332", "451335",
			"451440", "451441", "451442", "451551", "451556",
			"451660", "451666",
		},
	},
	{
		City: "Indore",
		Pincodes: []string{
			"452001", "452002", "452003", "452004", "452005",
			"452006", "452007", "452008", "452009", "452010",
			"452011", "452012", "452013", "452014", "452015",
			"452016", "452018", "452020", "453001", "453111",
			"453112", "453331", "453441", "453551", "453555",
			"453771",
		},
	},
}

var cityByPincode = buildIndex()

func buildIndex() map[string]string {
	idx := make(map[string]string)
	for _, area := range serviceAreas {
		for _, pin := range area.Pincodes {
			idx[pin] = area.City
		}
	}
	return idx
}

// IsValidPincode reports whether the pincode is inside a serviceable
// delivery area. Malformed input degrades to false, never an error.
func IsValidPincode(pincode string) bool {
	_, ok := cityByPincode[strings.TrimSpace(pincode)]
	return ok
}

// CityFromPincode resolves the owning city for a serviceable pincode.
// The boolean pairs with IsValidPincode: false means no city.
func CityFromPincode(pincode string) (string, bool) {
	city, ok := cityByPincode[strings.TrimSpace(pincode)]
	return city, ok
}

// ServiceableCities returns the supported city names in table order.
func ServiceableCities() []string {
	cities := make([]string, len(serviceAreas))
	for i, area := range serviceAreas {
		cities[i] = area.City
	}
	return cities
}

func ValidationMessage() string {
	return "We currently deliver only in " + strings.Join(ServiceableCities(), " and ") +
		". Please enter a pincode within these cities."
}
