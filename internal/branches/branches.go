// Package branches serves the static branch/location directory the
// location screen filters by city.
package branches

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/ranchers-app/storefront/internal/domain"
)

//go:embed locations.json
var locationsJSON []byte

// CityAll selects branches from every city.
const CityAll = "all"

type Directory struct {
	cities []domain.City
	byID   map[string]domain.City
}

func Load() (*Directory, error) {
	var data struct {
		Cities []domain.City `json:"cities"`
	}
	if err := json.Unmarshal(locationsJSON, &data); err != nil {
		return nil, fmt.Errorf("parse locations data: %w", err)
	}

	byID := make(map[string]domain.City, len(data.Cities))
	for _, city := range data.Cities {
		byID[city.ID] = city
	}
	return &Directory{cities: data.Cities, byID: byID}, nil
}

// Cities lists every city including the "all" pseudo-entry, in file order.
func (d *Directory) Cities() []domain.City {
	out := make([]domain.City, len(d.cities))
	copy(out, d.cities)
	return out
}

// Branches returns the branches of one city, or every branch when cityID is
// CityAll. Unknown cities yield an empty list.
func (d *Directory) Branches(cityID string) []domain.Branch {
	if cityID == CityAll {
		var all []domain.Branch
		for _, city := range d.cities {
			if city.ID == CityAll {
				continue
			}
			all = append(all, city.Branches...)
		}
		return all
	}

	city, ok := d.byID[cityID]
	if !ok {
		return nil
	}
	return city.Branches
}

// MapLink builds a maps search URL for a branch address.
func MapLink(address string) string {
	return "https://www.google.com/maps/search/?q=" + url.QueryEscape(address)
}
