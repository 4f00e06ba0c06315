package flight

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrMalformedPayload = errors.New("malformed leg payload")

// Normalize turns one raw leg payload into a LegSearchResult. Options keep
// the upstream order. Any unusable option fails the whole leg.
func Normalize(p *LegPayload) (LegSearchResult, error) {
	if p == nil || p.Summary == nil {
		return LegSearchResult{}, fmt.Errorf("%w: missing summary", ErrMalformedPayload)
	}

	summary, err := normalizeSummary(p.Summary)
	if err != nil {
		return LegSearchResult{}, err
	}

	distance := GreatCircleDistanceKm(
		summary.Origin.Latitude, summary.Origin.Longitude,
		summary.Destination.Latitude, summary.Destination.Longitude,
	)

	options := make([]FlightOption, 0, len(p.Options))
	for i, raw := range p.Options {
		opt, err := normalizeOption(raw, distance)
		if err != nil {
			return LegSearchResult{}, fmt.Errorf("option %d: %w", i, err)
		}
		options = append(options, opt)
	}

	return LegSearchResult{Summary: summary, Options: options}, nil
}

func normalizeSummary(s *SummaryPayload) (LegSummary, error) {
	date := strings.TrimSpace(s.DepartureDate)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return LegSummary{}, fmt.Errorf("%w: departure_date %q", ErrMalformedPayload, s.DepartureDate)
	}

	origin, err := geoPoint("from", s.From)
	if err != nil {
		return LegSummary{}, err
	}
	destination, err := geoPoint("to", s.To)
	if err != nil {
		return LegSummary{}, err
	}

	return LegSummary{
		DepartureDate: date,
		Currency:      s.Currency,
		Origin:        origin,
		Destination:   destination,
	}, nil
}

func geoPoint(field string, a *AirportPayload) (GeoPoint, error) {
	if a == nil {
		return GeoPoint{}, fmt.Errorf("%w: missing %s airport", ErrMalformedPayload, field)
	}
	if a.Lat == nil || a.Lon == nil {
		return GeoPoint{}, fmt.Errorf("%w: %s airport %q has no coordinates", ErrMalformedPayload, field, a.IATA)
	}
	return GeoPoint{
		IATA:      strings.ToUpper(strings.TrimSpace(a.IATA)),
		City:      a.City,
		Latitude:  *a.Lat,
		Longitude: *a.Lon,
		StateCode: a.State,
	}, nil
}

func normalizeOption(raw OptionPayload, distance float64) (FlightOption, error) {
	departure, err := ParseTimestamp(raw.DepartureTime)
	if err != nil {
		return FlightOption{}, fmt.Errorf("%w: departure_time: %v", ErrMalformedPayload, err)
	}
	arrival, err := ParseTimestamp(raw.ArrivalTime)
	if err != nil {
		return FlightOption{}, fmt.Errorf("%w: arrival_time: %v", ErrMalformedPayload, err)
	}
	if raw.Price.Fare == nil {
		return FlightOption{}, fmt.Errorf("%w: missing fare", ErrMalformedPayload)
	}
	fare := *raw.Price.Fare

	speed, err := AverageSpeedKmh(distance, departure.Time, arrival.Time)
	if err != nil {
		return FlightOption{}, err
	}
	cost, err := CostPerKm(fare, distance)
	if err != nil {
		return FlightOption{}, err
	}

	return FlightOption{
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Price:         NewPriceQuote(fare),
		Aircraft: AircraftInfo{
			Model:        raw.Aircraft.Model,
			Manufacturer: raw.Aircraft.Manufacturer,
		},
		Meta: FlightMeta{
			RangeKm:        distance,
			CruiseSpeedKmh: speed,
			CostPerKm:      cost,
		},
	}, nil
}
