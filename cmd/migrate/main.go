package main

import (
	"errors"
	"flag"
	"log"

	"flightservice/cfg"
	"flightservice/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	dir := flag.String("path", "db/migrations", "directory holding the migration files")
	down := flag.Bool("down", false, "roll back one migration instead of applying all pending ones")
	flag.Parse()

	// ============
	// Load config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}
	zlogger := logger.NewZeroLog(config.AppEnv)

	// =========
	// Migrate
	// =========
	m, err := migrate.New("file://"+*dir, config.Postgres.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	if *down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal(err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Fatal(err)
	}
	zlogger.Info("migrations applied",
		logger.Field{Key: "version", Value: int64(version)},
		logger.Field{Key: "dirty", Value: dirty},
	)
}
