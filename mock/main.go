package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
)

func main() {
	// Default port
	port := "8081"

	// Check if port is provided as command line argument
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	airports, err := loadAirports("mock/files/airports.json")
	if err != nil {
		log.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /air/airports/{key}", basicAuth(AirportsHandler(airports)))
	mux.Handle("GET /air/search/{key}/{origin}/{destination}/{date}", basicAuth(SearchHandler(airports)))

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Go Mock Server running on port %s...\n", port)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}

func basicAuth(next http.Handler) http.Handler {
	user := envOr("MOCK_USERNAME", "demo")
	pass := envOr("MOCK_PASSWORD", "demo")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, p, ok := r.BasicAuth()
		if !ok || u != user || p != pass {
			w.Header().Set("WWW-Authenticate", `Basic realm="mock"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
