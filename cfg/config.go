package cfg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

type UpstreamConfig struct {
	FlightBaseURL  string
	AirportBaseURL string
	APIKey         string
	Username       string
	Password       string
	Timeout        time.Duration
}

type AirportConfig struct {
	CacheTTL        time.Duration
	RefreshInterval time.Duration
	RefreshOnStart  bool
}

type SessionConfig struct {
	TTL   time.Duration
	Store string
}

type ObservabilityConfig struct {
	ServiceName  string
	OTLPEndpoint string
	Environment  string
}

func (o ObservabilityConfig) Enabled() bool {
	return o.OTLPEndpoint != ""
}

type Config struct {
	AppEnv          string
	AppPort         string
	Postgres        PostgresConfig
	Redis           RedisConfig
	Upstream        UpstreamConfig
	Airport         AirportConfig
	Session         SessionConfig
	SnowflakeNodeID int64
	Observability   ObservabilityConfig
}

// Load reads .env when present, then the process environment. Every missing
// or malformed key is reported in the returned error.
func Load() (*Config, error) {
	var errs []error

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := envOr("APP_PORT", "8080")

	pgHost := mustEnv("POSTGRES_HOST", &errs)
	pgPort := mustEnv("POSTGRES_PORT", &errs)
	pgUser := mustEnv("POSTGRES_USER", &errs)
	pgPassword := mustEnv("POSTGRES_PASSWORD", &errs)
	pgDB := mustEnv("POSTGRES_DB", &errs)
	pgSSLMode := envOr("POSTGRES_SSLMODE", "disable")

	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)
	redisPassword := os.Getenv("REDIS_PASSWORD")

	flightBaseURL := mustEnv("FLIGHT_API_BASE_URL", &errs)
	airportBaseURL := mustEnv("AIRPORT_API_BASE_URL", &errs)
	apiKey := mustEnv("UPSTREAM_API_KEY", &errs)
	upstreamUser := mustEnv("UPSTREAM_USERNAME", &errs)
	upstreamPassword := mustEnv("UPSTREAM_PASSWORD", &errs)
	upstreamTimeout := intEnv("UPSTREAM_TIMEOUT_SECONDS", 10, &errs)

	airportCacheTTL := intEnv("AIRPORT_CACHE_TTL_SECONDS", 60, &errs)
	airportRefresh := intEnv("AIRPORT_REFRESH_INTERVAL_MINUTES", 1440, &errs)
	airportRefreshOnStart := boolEnv("AIRPORT_REFRESH_ON_START", false, &errs)

	sessionTTL := intEnv("SESSION_TTL_HOURS", 24, &errs)
	sessionStore := envOr("SESSION_STORE", "redis")
	if sessionStore != "redis" && sessionStore != "memory" {
		errs = append(errs, errors.New("invalid env: SESSION_STORE must be redis or memory"))
	}

	nodeID := intEnv("SNOWFLAKE_NODE_ID", 1, &errs)

	if upstreamTimeout <= 0 {
		errs = append(errs, errors.New("invalid env: UPSTREAM_TIMEOUT_SECONDS must be positive"))
	}
	if airportRefresh <= 0 {
		errs = append(errs, errors.New("invalid env: AIRPORT_REFRESH_INTERVAL_MINUTES must be positive"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		Postgres: PostgresConfig{
			Host:     pgHost,
			Port:     pgPort,
			User:     pgUser,
			Password: pgPassword,
			DBName:   pgDB,
			SSLMode:  pgSSLMode,
		},
		Redis: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		Upstream: UpstreamConfig{
			FlightBaseURL:  flightBaseURL,
			AirportBaseURL: airportBaseURL,
			APIKey:         apiKey,
			Username:       upstreamUser,
			Password:       upstreamPassword,
			Timeout:        time.Duration(upstreamTimeout) * time.Second,
		},
		Airport: AirportConfig{
			CacheTTL:        time.Duration(airportCacheTTL) * time.Second,
			RefreshInterval: time.Duration(airportRefresh) * time.Minute,
			RefreshOnStart:  airportRefreshOnStart,
		},
		Session: SessionConfig{
			TTL:   time.Duration(sessionTTL) * time.Hour,
			Store: sessionStore,
		},
		SnowflakeNodeID: int64(nodeID),
		Observability: ObservabilityConfig{
			ServiceName:  envOr("OTEL_SERVICE_NAME", "flightservice"),
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Environment:  appEnv,
		},
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return n
}

func boolEnv(key string, fallback bool, errs *[]error) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return b
}
