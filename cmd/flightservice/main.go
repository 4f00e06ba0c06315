package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightservice/cfg"
	"flightservice/internal/airport"
	"flightservice/internal/flight"
	"flightservice/internal/user"
	"flightservice/pkg/airportclient"
	"flightservice/pkg/cache"
	"flightservice/pkg/db"
	"flightservice/pkg/flightclient"
	"flightservice/pkg/idgen"
	"flightservice/pkg/logger"
	"flightservice/pkg/session"
	"flightservice/pkg/telemetry"

	_ "flightservice/cmd/flightservice/docs" // swagger docs

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Flight Service API
// @version         1.0
// @description     Round-trip flight search over the airline API, plus airport reference data and token auth.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey TokenAuth
// @in              header
// @name            Authorization
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ============
	// Otel
	// ============
	if config.Observability.Enabled() {
		shutdownOtel, err := telemetry.InitOtel(ctx, telemetry.Config{
			ServiceName:  config.Observability.ServiceName,
			Environment:  config.Observability.Environment,
			OTLPEndpoint: config.Observability.OTLPEndpoint,
		}, zlogger)
		if err != nil {
			zlogger.Warn("continuing without tracing/metrics", logger.Field{Key: "err", Value: err})
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownOtel(ctx); err != nil {
					zlogger.Error("failed to shutdown OpenTelemetry", logger.Field{Key: "err", Value: err})
				}
			}()
		}
	}

	// ============
	// DB
	// ============
	sqlClient, err := db.NewSQLClient(ctx, "postgres", config.Postgres.DSN(), db.PoolConfig{
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer sqlClient.Close()

	// ============
	// Cache
	// ============
	redis := cache.NewRedisCache(config.Redis.Addr(), config.Redis.Password)
	if err := cache.Ping(ctx, redis); err != nil {
		log.Fatal(err)
	}
	defer cache.Close(redis)

	var sessions session.Store
	if config.Session.Store == "memory" {
		sessions = session.NewInMemoryStore(10 * time.Minute)
	} else {
		sessions = session.NewCacheStore(redis)
	}
	defer sessions.Cleanup()

	ids, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: config.Upstream.Timeout,
	}
	flightClient := flightclient.NewClient(httpClient, config.Upstream.FlightBaseURL, flightclient.Credentials{
		APIKey:   config.Upstream.APIKey,
		Username: config.Upstream.Username,
		Password: config.Upstream.Password,
	}, zlogger)
	airportClient := airportclient.NewClient(httpClient, config.Upstream.AirportBaseURL,
		config.Upstream.APIKey, config.Upstream.Username, config.Upstream.Password, zlogger)

	// ============
	// Internal Service
	// ============
	airportRepo := airport.NewRepository(sqlClient)
	airportSvc := airport.NewService(airportRepo, airportClient, redis, config.Airport.CacheTTL, zlogger)
	airportJob := airport.NewJob(airportSvc, config.Airport.RefreshInterval, config.Airport.RefreshOnStart, zlogger)

	userSvc := user.NewService(user.NewRepository(sqlClient), ids, sessions, config.Session.TTL, zlogger)
	flightSvc := flight.NewService(flightClient, airportRepo, config.Upstream.Timeout, zlogger)

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(telemetry.RequestID())
	if config.Observability.Enabled() {
		r.Use(otelgin.Middleware(config.Observability.ServiceName))
	}
	r.Use(telemetry.TraceLoggerMiddleware(zlogger))
	initSwagger(r)

	protected := r.Group("/", user.AuthMiddleware(userSvc))
	user.NewHandler(userSvc).RegisterRoutes(r, protected)
	airport.NewHandler(airportSvc).RegisterRoutes(protected)
	flight.NewFlightHandler(flightSvc).RegisterRoutes(protected)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.AppPort),
		Handler:           cors.AllowAll().Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go airportJob.Run(ctx)

	go func() {
		zlogger.Info("http server listening", logger.Field{Key: "addr", Value: srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlogger.Error("http server failed", logger.Field{Key: "err", Value: err})
			stop()
		}
	}()

	<-ctx.Done()
	zlogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlogger.Error("graceful shutdown failed", logger.Field{Key: "err", Value: err})
	}
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(http.StatusOK, html)
	})
}
