package flight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05"
)

// FlightAPI fetches the raw option list for one leg.
type FlightAPI interface {
	FetchLegOptions(ctx context.Context, origin, destination, date string) (*LegPayload, error)
}

// IataLookup reports whether an airport code is known.
type IataLookup interface {
	IataExists(ctx context.Context, code string) (bool, error)
}

type SearchRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
}

type GeoPoint struct {
	IATA      string  `json:"iata"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	StateCode string  `json:"state"`
}

type LegSummary struct {
	DepartureDate string   `json:"departure_date"`
	Currency      string   `json:"currency"`
	Origin        GeoPoint `json:"origin"`
	Destination   GeoPoint `json:"destination"`
}

type PriceQuote struct {
	Fare  float64 `json:"fare"`
	Fees  float64 `json:"fees"`
	Total float64 `json:"total"`
}

type FlightMeta struct {
	RangeKm        float64 `json:"range"`
	CruiseSpeedKmh float64 `json:"cruise_speed_kmh"`
	CostPerKm      float64 `json:"cost_per_km"`
}

type AircraftInfo struct {
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
}

type FlightOption struct {
	DepartureTime Timestamp    `json:"departure_time"`
	ArrivalTime   Timestamp    `json:"arrival_time"`
	Price         PriceQuote   `json:"price"`
	Aircraft      AircraftInfo `json:"aircraft"`
	Meta          FlightMeta   `json:"meta"`
}

type LegSearchResult struct {
	Summary LegSummary     `json:"summary"`
	Options []FlightOption `json:"options"`
}

// LegChoice is one option of a leg flattened together with the leg summary.
type LegChoice struct {
	LegSummary
	FlightOption
}

type FlightCombination struct {
	CombinedPrice float64   `json:"price"`
	Outbound      LegChoice `json:"outbound_flight"`
	Inbound       LegChoice `json:"return_flight"`
}

// Timestamp is a zone-less wall clock time as the airline API sends it.
type Timestamp struct {
	time.Time
}

func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		// RFC 3339 with an offset is accepted too
		t2, err2 := time.Parse(time.RFC3339, s)
		if err2 != nil {
			return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
		t = t2
	}
	return Timestamp{Time: t}, nil
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimestampLayout))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
