package flight

import (
	"errors"
	"time"

	"github.com/umahmood/haversine"
)

var (
	ErrZeroFlightTime = errors.New("arrival time must be after departure time")
	ErrZeroDistance   = errors.New("origin and destination coordinates coincide")
)

// GreatCircleDistanceKm uses the haversine formula on a sphere of radius 6371 km.
// Inputs are degrees and are not range-checked.
func GreatCircleDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: lat1, Lon: lon1},
		haversine.Coord{Lat: lat2, Lon: lon2},
	)
	return km
}

func AverageSpeedKmh(distanceKm float64, departure, arrival time.Time) (float64, error) {
	hours := arrival.Sub(departure).Hours()
	if hours <= 0 {
		return 0, ErrZeroFlightTime
	}
	return distanceKm / hours, nil
}

func CostPerKm(fare, distanceKm float64) (float64, error) {
	if distanceKm <= 0 {
		return 0, ErrZeroDistance
	}
	return fare / distanceKm, nil
}
