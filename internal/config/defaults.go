package config

import (
	_ "embed"
)

//go:embed defaults/cities.yaml
var defaultCitiesYAML []byte

//go:embed defaults/cities.schema.json
var citiesSchemaJSON []byte

// DefaultCatalog returns the built-in five-city catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Cities: []City{
			{
				ID: "budapest", Name: "Budapest", LocalName: "Budapest",
				TrashCount: 40, WindMultiplier: 1.0, AttackMultiplier: 1.0,
				BgColor: "#3D5A80", AccentColor: "#EE6C4D",
				Landmarks: []string{"Chain Bridge", "Tram", "Danube"},
			},
			{
				ID: "paris", Name: "Paris", LocalName: "Párizs",
				TrashCount: 50, WindMultiplier: 1.1, AttackMultiplier: 1.1,
				BgColor: "#E8D5B7", AccentColor: "#C1666B",
				Landmarks: []string{"Eiffel Tower", "Café", "Macaron"},
			},
			{
				ID: "newyork", Name: "New York", LocalName: "New York",
				TrashCount: 60, WindMultiplier: 1.2, AttackMultiplier: 1.2,
				BgColor: "#4A4E69", AccentColor: "#F2CC8F",
				Landmarks: []string{"Taxi", "Central Park", "Skyscraper"},
			},
			{
				ID: "tokyo", Name: "Tokyo", LocalName: "Tokió",
				TrashCount: 70, WindMultiplier: 1.3, AttackMultiplier: 1.3,
				BgColor: "#1A1A2E", AccentColor: "#E94560",
				Landmarks: []string{"Neon", "Torii", "Sakura"},
			},
			{
				ID: "london", Name: "London", LocalName: "London",
				TrashCount: 80, WindMultiplier: 1.5, AttackMultiplier: 1.5,
				BgColor: "#2D3436", AccentColor: "#D63031",
				Landmarks: []string{"Big Ben", "Phone Box", "Umbrella"},
			},
		},
	}
}
