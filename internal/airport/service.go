package airport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"flightservice/pkg/airportclient"
	"flightservice/pkg/cache"
	"flightservice/pkg/logger"

	"golang.org/x/sync/singleflight"
)

const cacheKey = "airports"

type Store interface {
	List(ctx context.Context) ([]Airport, error)
	Upsert(ctx context.Context, airports []Airport) error
}

type Fetcher interface {
	FetchAirports(ctx context.Context) (map[string]airportclient.Entry, error)
}

type Service struct {
	store   Store
	fetcher Fetcher
	cache   cache.Cache
	ttl     time.Duration
	logger  logger.Logger
	group   singleflight.Group
}

func NewService(store Store, fetcher Fetcher, c cache.Cache, ttl time.Duration, log logger.Logger) *Service {
	return &Service{
		store:   store,
		fetcher: fetcher,
		cache:   c,
		ttl:     ttl,
		logger:  log,
	}
}

// List serves the airport list from cache, loading it from the store on a
// miss. Concurrent misses share one load.
func (s *Service) List(ctx context.Context) ([]Airport, error) {
	cached, err := s.cache.Get(ctx, cacheKey)
	if err == nil {
		var airports []Airport
		if err := json.Unmarshal([]byte(cached), &airports); err == nil {
			s.logger.Debug("airport list served from cache")
			return airports, nil
		}
		s.logger.Error("failed to unmarshal cached airports", logger.Field{Key: "err", Value: err})
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("airport cache unavailable", logger.Field{Key: "err", Value: err})
	}

	v, err, _ := s.group.Do(cacheKey, func() (any, error) {
		airports, err := s.store.List(ctx)
		if err != nil {
			return nil, err
		}

		b, err := json.Marshal(airports)
		if err != nil {
			s.logger.Error("failed to marshal airports", logger.Field{Key: "err", Value: err})
			return airports, nil
		}
		if err := s.cache.Set(ctx, cacheKey, string(b), s.ttl); err != nil {
			s.logger.Error("failed to cache airports", logger.Field{Key: "err", Value: err})
		}
		s.logger.Debug("airport list loaded from store", logger.Field{Key: "count", Value: len(airports)})
		return airports, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list airports: %w", err)
	}
	return v.([]Airport), nil
}

// Refresh pulls the upstream list, stores it and drops the cached copy.
// It returns how many airports were written.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	entries, err := s.fetcher.FetchAirports(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch airports: %w", err)
	}

	airports := s.format(entries)
	if err := s.store.Upsert(ctx, airports); err != nil {
		return 0, fmt.Errorf("store airports: %w", err)
	}

	if err := s.cache.Del(ctx, cacheKey); err != nil {
		s.logger.Warn("failed to reset airport cache", logger.Field{Key: "err", Value: err})
	}

	s.logger.Info("airports refreshed", logger.Field{Key: "count", Value: len(airports)})
	return len(airports), nil
}

func (s *Service) format(entries map[string]airportclient.Entry) []Airport {
	airports := make([]Airport, 0, len(entries))
	for code, e := range entries {
		iata := strings.ToUpper(strings.TrimSpace(code))
		if !validIATA(iata) {
			s.logger.Warn("skipping airport with invalid iata code", logger.Field{Key: "iata", Value: code})
			continue
		}
		airports = append(airports, Airport{
			IATA:      iata,
			City:      e.City,
			Latitude:  e.Lat,
			Longitude: e.Lon,
			State:     e.State,
		})
	}

	sort.Slice(airports, func(i, j int) bool {
		return airports[i].IATA < airports[j].IATA
	})
	return airports
}

func validIATA(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
