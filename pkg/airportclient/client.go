package airportclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"flightservice/pkg/logger"
)

// Entry is one airport as the upstream list reports it, keyed by IATA code.
type Entry struct {
	City  string  `json:"city"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	State string  `json:"state"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	username   string
	password   string
	logger     logger.Logger
}

func NewClient(httpClient *http.Client, baseURL, apiKey, username, password string, log logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		username:   username,
		password:   password,
		logger:     log,
	}
}

func (c *Client) FetchAirports(ctx context.Context) (map[string]Entry, error) {
	endpoint := fmt.Sprintf("%s/air/airports/%s", c.baseURL, url.PathEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("airport list returned non-200", logger.Field{Key: "status", Value: resp.StatusCode})
		return nil, fmt.Errorf("external api returned non-200 status: %d", resp.StatusCode)
	}

	var entries map[string]Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode airport list: %w", err)
	}
	return entries, nil
}
