package main

import (
	"encoding/json"
	"hash/fnv"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

type SearchResponse struct {
	Summary Summary  `json:"summary"`
	Options []Option `json:"options"`
}

type Summary struct {
	DepartureDate string      `json:"departure_date"`
	From          SummaryPort `json:"from"`
	To            SummaryPort `json:"to"`
	Currency      string      `json:"currency"`
}

type SummaryPort struct {
	IATA  string  `json:"iata"`
	City  string  `json:"city"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	State string  `json:"state"`
}

type Option struct {
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	Price         Price    `json:"price"`
	Aircraft      Aircraft `json:"aircraft"`
	Meta          Meta     `json:"meta"`
}

type Price struct {
	Fare  float64 `json:"fare"`
	Fees  float64 `json:"fees"`
	Total float64 `json:"total"`
}

type Aircraft struct {
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
}

type Meta struct {
	Range          float64 `json:"range"`
	CruiseSpeedKmh float64 `json:"cruise_speed_kmh"`
	CostPerKm      float64 `json:"cost_per_km"`
}

var fleet = []Aircraft{
	{Model: "A320", Manufacturer: "Airbus"},
	{Model: "A321neo", Manufacturer: "Airbus"},
	{Model: "737-800", Manufacturer: "Boeing"},
	{Model: "737 MAX 8", Manufacturer: "Boeing"},
	{Model: "E195-E2", Manufacturer: "Embraer"},
}

// SearchHandler fabricates a stable set of options per route and date.
// Fees, total and meta are deliberately junk; clients must recompute them.
func SearchHandler(airports map[string]Airport) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := strings.ToUpper(r.PathValue("origin"))
		destination := strings.ToUpper(r.PathValue("destination"))
		date := r.PathValue("date")

		from, ok := airports[origin]
		if !ok {
			http.Error(w, "unknown origin", http.StatusNotFound)
			return
		}
		to, ok := airports[destination]
		if !ok {
			http.Error(w, "unknown destination", http.StatusNotFound)
			return
		}
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}

		h := fnv.New64a()
		h.Write([]byte(origin + destination + date))
		rng := rand.New(rand.NewSource(int64(h.Sum64())))

		count := 2 + rng.Intn(5)
		options := make([]Option, 0, count)
		for i := 0; i < count; i++ {
			dep := day.Add(time.Duration(5+rng.Intn(18))*time.Hour + time.Duration(rng.Intn(4)*15)*time.Minute)
			arr := dep.Add(time.Duration(60+rng.Intn(300)) * time.Minute)
			fare := float64(150+rng.Intn(1800)) + float64(rng.Intn(100))/100

			options = append(options, Option{
				DepartureTime: dep.Format("2006-01-02T15:04:05"),
				ArrivalTime:   arr.Format("2006-01-02T15:04:05"),
				Price:         Price{Fare: fare, Fees: 0, Total: fare},
				Aircraft:      fleet[rng.Intn(len(fleet))],
				Meta:          Meta{Range: 1000, CruiseSpeedKmh: 800, CostPerKm: 0.1},
			})
		}

		delay := 50 + rand.Intn(51) // 50 to 100ms
		time.Sleep(time.Duration(delay) * time.Millisecond)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SearchResponse{
			Summary: Summary{
				DepartureDate: date,
				From:          SummaryPort{IATA: origin, City: from.City, Lat: from.Lat, Lon: from.Lon, State: from.State},
				To:            SummaryPort{IATA: destination, City: to.City, Lat: to.Lat, Lon: to.Lon, State: to.State},
				Currency:      "BRL",
			},
			Options: options,
		})
	}
}
