package main

import (
	"context"
	"database/sql"
	"flag"
	"os"

	"github.com/adiwijaya/warungpos-backend/pkg/config"
	"github.com/adiwijaya/warungpos-backend/pkg/logger"
	"github.com/adiwijaya/warungpos-backend/pkg/migrate"
	"github.com/joho/godotenv"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	cmd := flag.String("cmd", "up", "migration command: up|down|redo|status|version|up-to|down-to")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx = logg.WithFields(ctx, map[string]any{
		"env":    cfg.App.Env,
		"cmd":    *cmd,
		"driver": cfg.DB.Driver,
	})

	db, err := sql.Open(sqlDriverName(cfg.DB.Driver), cfg.DB.DSN)
	if err != nil {
		logg.Error(ctx, "failed to open database", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logg.Error(ctx, "database unreachable", err)
		os.Exit(1)
	}

	if err := migrate.Run(ctx, db, cfg.DB.Driver, *cmd, flag.Args()...); err != nil {
		logg.Error(ctx, "migration failed", err)
		os.Exit(1)
	}

	logg.Info(ctx, "migration complete")
}

func sqlDriverName(driver string) string {
	if driver == config.DBDriverPostgres {
		return "postgres"
	}
	return "sqlite3"
}
