package models

import "time"

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RouteSegment is the leg between two consecutive stops.
type RouteSegment struct {
	DistanceKm float64 `json:"distance_km"`
	Duration   string  `json:"duration"`
}

// RouteSummary aggregates the legs of an ordered multi-stop route.
type RouteSummary struct {
	Segments []RouteSegment `json:"segments"`
	TotalKm  float64        `json:"total_km"`
}

// Destination is one entry of the in-memory catalog.
type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	State       string   `json:"state"`
	Region      string   `json:"region"`
	Categories  []string `json:"categories"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	BestSeason  string   `json:"best_season"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// NearbyPlace is a point of interest returned by the Overpass wrapper.
type NearbyPlace struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}

// WeatherReport is the subset of the Open-Meteo response the API exposes.
type WeatherReport struct {
	TemperatureC float64 `json:"temperature_c"`
	WindSpeedKmh float64 `json:"wind_speed_kmh"`
	Condition    string  `json:"condition"`
	MinC         float64 `json:"min_c"`
	MaxC         float64 `json:"max_c"`
}

// ExchangeRates holds one fetch of INR conversion rates.
type ExchangeRates struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// CostRequest is the input to the trip cost calculator.
type CostRequest struct {
	Destination string `json:"destination" binding:"required"`
	Days        int    `json:"days" binding:"required,min=1,max=60"`
	Travelers   int    `json:"travelers"`
	Tier        string `json:"tier"`
	Currency    string `json:"currency"`
}

// ConvertedAmount is an estimate restated in a foreign currency.
type ConvertedAmount struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

// CostEstimate is the output of the trip cost calculator. Figures are
// always present in INR; Converted is set only when a foreign currency
// was requested and the rate lookup succeeded.
type CostEstimate struct {
	Destination string           `json:"destination"`
	Days        int              `json:"days"`
	Travelers   int              `json:"travelers"`
	Tier        string           `json:"tier"`
	TotalINR    float64          `json:"total_inr"`
	PerDayINR   float64          `json:"per_day_inr"`
	Formatted   string           `json:"formatted"`
	Currency    string           `json:"currency"`
	Converted   *ConvertedAmount `json:"converted,omitempty"`
}

// DestinationOverview aggregates best-effort collaborator data for one
// destination. Fields are nil/empty when the upstream call failed.
type DestinationOverview struct {
	Destination Destination    `json:"destination"`
	Weather     *WeatherReport `json:"weather,omitempty"`
	Nearby      []NearbyPlace  `json:"nearby,omitempty"`
	Rates       *ExchangeRates `json:"rates,omitempty"`
}
