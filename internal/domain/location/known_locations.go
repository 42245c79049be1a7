package location

import (
	"os"

	"alertacordon/internal/domain/entity"
	"alertacordon/internal/errors"

	"gopkg.in/yaml.v3"
)

// BuiltinLocations returns the curated table. Order matters: substring
// matching scans it top to bottom, so "paullier entre rivera y rodó" must stay
// ahead of "rivera y paullier" and the catch-all "cordón" stays last.
func BuiltinLocations() []KnownLocation {
	return []KnownLocation{
		{Name: "paullier entre rivera y rodó", Coordinates: entity.Coordinates{Latitude: -34.9075, Longitude: -56.1668}},
		{Name: "18 de julio y ejido", Coordinates: entity.Coordinates{Latitude: -34.905, Longitude: -56.169}},
		{Name: "bv. artigas y misiones", Coordinates: entity.Coordinates{Latitude: -34.91, Longitude: -56.162}},
		{Name: "tristán narvaja y canelones", Coordinates: entity.Coordinates{Latitude: -34.9045, Longitude: -56.1645}},
		{Name: "abitab rivera y paullier", Coordinates: entity.Coordinates{Latitude: -34.9077, Longitude: -56.1662}},
		{Name: "almacén carlos - paullier y rodó", Coordinates: entity.Coordinates{Latitude: -34.9073, Longitude: -56.1671}},
		{Name: "rivera y paullier", Coordinates: entity.Coordinates{Latitude: -34.9075, Longitude: -56.1668}},
		{Name: "18 de julio y julio herrera y obes", Coordinates: entity.Coordinates{Latitude: -34.9053, Longitude: -56.1872}},
		{Name: "cordón", Coordinates: entity.Coordinates{Latitude: -34.9033, Longitude: -56.1646}},
	}
}

type knownLocationsFile struct {
	Locations []knownLocationEntry `yaml:"locations"`
}

type knownLocationEntry struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
}

// LoadKnownLocations reads extra table entries from a YAML file of the form
//
//	locations:
//	  - name: plaza seregni
//	    lat: -34.9011
//	    lng: -56.1722
//
// Entries keep file order. Entries outside the WGS84 range are rejected.
func LoadKnownLocations(path string) ([]KnownLocation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read known locations %s", path)
	}

	var file knownLocationsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.Wrapf(err, "parse known locations %s", path)
	}

	out := make([]KnownLocation, 0, len(file.Locations))
	for i, e := range file.Locations {
		coords := entity.Coordinates{Latitude: e.Lat, Longitude: e.Lng}
		if Normalize(e.Name) == "" {
			return nil, errors.Errorf("known location #%d has no name", i)
		}
		if !coords.InRange() {
			return nil, errors.Errorf("known location %q is out of range: %s", e.Name, coords)
		}
		out = append(out, KnownLocation{Name: e.Name, Coordinates: coords})
	}

	return out, nil
}
