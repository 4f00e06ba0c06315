package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"flightservice/cfg"
	"flightservice/internal/airport"
	"flightservice/pkg/airportclient"
	"flightservice/pkg/cache"
	"flightservice/pkg/db"
	"flightservice/pkg/logger"

	_ "github.com/lib/pq"
)

// Runs the airport refresh once, e.g. from a cron entry.
func main() {
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}
	zlogger := logger.NewZeroLog(config.AppEnv)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sqlClient, err := db.NewSQLClient(ctx, "postgres", config.Postgres.DSN(), db.PoolConfig{MaxOpenConns: 2})
	if err != nil {
		log.Fatal(err)
	}
	defer sqlClient.Close()

	redis := cache.NewRedisCache(config.Redis.Addr(), config.Redis.Password)
	defer cache.Close(redis)

	client := airportclient.NewClient(&http.Client{Timeout: config.Upstream.Timeout},
		config.Upstream.AirportBaseURL, config.Upstream.APIKey,
		config.Upstream.Username, config.Upstream.Password, zlogger)

	svc := airport.NewService(airport.NewRepository(sqlClient), client, redis, config.Airport.CacheTTL, zlogger)

	n, err := svc.Refresh(ctx)
	if err != nil {
		zlogger.Error("airport import failed", logger.Field{Key: "err", Value: err})
		log.Fatal(err)
	}
	zlogger.Info("airport import finished", logger.Field{Key: "count", Value: n})
}
