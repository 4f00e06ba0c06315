package flightclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"flightservice/internal/flight"
	"flightservice/pkg/logger"
)

// Client calls the airline search API, one leg per request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	username   string
	password   string
	logger     logger.Logger
}

type Credentials struct {
	APIKey   string
	Username string
	Password string
}

func NewClient(httpClient *http.Client, baseURL string, creds Credentials, log logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     creds.APIKey,
		username:   creds.Username,
		password:   creds.Password,
		logger:     log,
	}
}

// FetchLegOptions implements flight.FlightAPI.
func (c *Client) FetchLegOptions(ctx context.Context, origin, destination, date string) (*flight.LegPayload, error) {
	endpoint := fmt.Sprintf("%s/air/search/%s/%s/%s/%s",
		c.baseURL,
		url.PathEscape(c.apiKey),
		url.PathEscape(origin),
		url.PathEscape(destination),
		url.PathEscape(date),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("failed to build flight search request", logger.Field{Key: "err", Value: err})
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
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("flight search returned non-200",
			logger.Field{Key: "status", Value: resp.StatusCode},
			logger.Field{Key: "origin", Value: origin},
			logger.Field{Key: "destination", Value: destination},
			logger.Field{Key: "body", Value: string(snippet)},
		)
		return nil, fmt.Errorf("external api returned non-200 status: %d", resp.StatusCode)
	}

	var payload flight.LegPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode flight search response: %w", err)
	}

	return &payload, nil
}
