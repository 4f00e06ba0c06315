package flight

// LegPayload is the airline API response for a single leg.
// Upstream price.fees, price.total and the meta block are not decoded: they
// are always derived from fare and the summary coordinates.
type LegPayload struct {
	Summary *SummaryPayload `json:"summary"`
	Options []OptionPayload `json:"options"`
}

type SummaryPayload struct {
	DepartureDate string          `json:"departure_date"`
	Currency      string          `json:"currency"`
	From          *AirportPayload `json:"from"`
	To            *AirportPayload `json:"to"`
}

type AirportPayload struct {
	IATA  string   `json:"iata"`
	City  string   `json:"city"`
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
	State string   `json:"state"`
}

type OptionPayload struct {
	DepartureTime string          `json:"departure_time"`
	ArrivalTime   string          `json:"arrival_time"`
	Price         PricePayload    `json:"price"`
	Aircraft      AircraftPayload `json:"aircraft"`
}

type PricePayload struct {
	Fare *float64 `json:"fare"`
}

type AircraftPayload struct {
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
}
