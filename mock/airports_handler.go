package main

import (
	"encoding/json"
	"net/http"
	"os"
)

type Airport struct {
	City  string  `json:"city"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	State string  `json:"state"`
}

func loadAirports(path string) (map[string]Airport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var airports map[string]Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func AirportsHandler(airports map[string]Airport) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(airports)
	}
}
