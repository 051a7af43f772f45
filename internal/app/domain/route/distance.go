package route

import (
	"fmt"
	"math"

	"github.com/safarnama/safarnama/internal/app/models"
)

const (
	earthRadiusKm = 6371.0088

	// defaultAverageSpeedKmh approximates city driving in Indian traffic.
	defaultAverageSpeedKmh = 30.0
)

// Haversine returns the great-circle distance in kilometers between two
// coordinates.
func Haversine(a, b models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// ComputeRouteDistances walks an ordered list of stops, producing one
// segment per consecutive pair and the summed total. Pure computation,
// no I/O; fewer than two points yields an empty summary.
func ComputeRouteDistances(points []models.Coordinate, averageSpeedKmh float64) models.RouteSummary {
	if averageSpeedKmh <= 0 {
		averageSpeedKmh = defaultAverageSpeedKmh
	}

	summary := models.RouteSummary{Segments: []models.RouteSegment{}}
	for i := 1; i < len(points); i++ {
		km := Haversine(points[i-1], points[i])
		summary.Segments = append(summary.Segments, models.RouteSegment{
			DistanceKm: roundKm(km),
			Duration:   formatDuration(km / averageSpeedKmh),
		})
		summary.TotalKm += km
	}
	summary.TotalKm = roundKm(summary.TotalKm)
	return summary
}

func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

// formatDuration renders a fractional hour count as "N min" or "Xh Ym".
func formatDuration(hours float64) string {
	minutes := int(math.Round(hours * 60))
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
