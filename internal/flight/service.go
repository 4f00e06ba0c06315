package flight

import (
	"context"
	"time"

	"flightservice/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "flightservice/internal/flight"

// Service runs one round-trip search: validate, fetch both legs, normalize,
// combine. It holds no per-search state and is safe for concurrent use.
type Service struct {
	api       FlightAPI
	validator *Validator
	timeout   time.Duration
	logger    logger.Logger

	tracer        trace.Tracer
	upstreamCalls metric.Int64Counter
}

type Option func(*Service)

// WithClock replaces the clock used for the departure date rule.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.validator.now = now
	}
}

// WithTracerProvider is used by tests; the global provider is the default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracer = tp.Tracer(instrumentationName)
	}
}

func NewService(api FlightAPI, iata IataLookup, fetchTimeout time.Duration, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		api:       api,
		validator: NewValidator(iata, time.Now),
		timeout:   fetchTimeout,
		logger:    log,
		tracer:    otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(s)
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"flight.upstream.calls",
		metric.WithDescription("Leg fetches issued to the flight search API"),
	)
	if err != nil {
		log.Warn("failed to create upstream call counter", logger.Field{Key: "err", Value: err})
	}
	s.upstreamCalls = counter

	return s
}

// SearchFlights returns every outbound x return combination sorted by
// combined price. It fails with *ValidationError before any fetch, or with
// *UpstreamError when a leg cannot be fetched or normalized.
func (s *Service) SearchFlights(ctx context.Context, req SearchRequest) ([]FlightCombination, error) {
	ctx, span := s.tracer.Start(ctx, "flight.SearchFlights", trace.WithAttributes(
		attribute.String("flight.origin", req.Origin),
		attribute.String("flight.destination", req.Destination),
		attribute.String("flight.departure_date", req.DepartureDate),
		attribute.String("flight.return_date", req.ReturnDate),
	))
	defer span.End()

	if err := s.validator.Validate(ctx, req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid search parameters")
		return nil, err
	}

	outbound, err := s.fetchLeg(ctx, LegOutbound, req.Origin, req.Destination, req.DepartureDate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "outbound leg failed")
		return nil, err
	}

	inbound, err := s.fetchLeg(ctx, LegInbound, req.Destination, req.Origin, req.ReturnDate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "inbound leg failed")
		return nil, err
	}

	combos := BuildCombinations(outbound, inbound)
	span.SetAttributes(attribute.Int("flight.combinations", len(combos)))

	s.logger.Info("flight search completed",
		logger.Field{Key: "origin", Value: req.Origin},
		logger.Field{Key: "destination", Value: req.Destination},
		logger.Field{Key: "outbound_options", Value: len(outbound.Options)},
		logger.Field{Key: "inbound_options", Value: len(inbound.Options)},
		logger.Field{Key: "combinations", Value: len(combos)},
	)
	return combos, nil
}

func (s *Service) fetchLeg(ctx context.Context, leg Leg, origin, destination, date string) (LegSearchResult, error) {
	ctx, span := s.tracer.Start(ctx, "flight.fetchLeg", trace.WithAttributes(
		attribute.String("flight.leg", string(leg)),
	))
	defer span.End()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	payload, err := s.api.FetchLegOptions(ctx, origin, destination, date)
	s.countCall(ctx, leg, err)
	if err != nil {
		s.logger.Error("leg fetch failed",
			logger.Field{Key: "leg", Value: string(leg)},
			logger.Field{Key: "origin", Value: origin},
			logger.Field{Key: "destination", Value: destination},
			logger.Field{Key: "date", Value: date},
			logger.Field{Key: "err", Value: err},
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return LegSearchResult{}, &UpstreamError{Leg: leg, Err: err}
	}

	result, err := Normalize(payload)
	if err != nil {
		s.logger.Error("leg payload rejected",
			logger.Field{Key: "leg", Value: string(leg)},
			logger.Field{Key: "err", Value: err},
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "normalize failed")
		return LegSearchResult{}, &UpstreamError{Leg: leg, Err: err}
	}

	s.logger.Debug("leg fetched",
		logger.Field{Key: "leg", Value: string(leg)},
		logger.Field{Key: "options", Value: len(result.Options)},
		logger.Field{Key: "elapsed", Value: time.Since(start)},
	)
	span.SetAttributes(attribute.Int("flight.options", len(result.Options)))
	return result, nil
}

func (s *Service) countCall(ctx context.Context, leg Leg, err error) {
	if s.upstreamCalls == nil {
		return
	}
	s.upstreamCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("leg", string(leg)),
		attribute.Bool("error", err != nil),
	))
}
