package config

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// OpenDB connects to the external user store if one is configured.
// It returns nil when the store is unconfigured or unreachable, which
// switches the portal to demo mode instead of failing startup.
func OpenDB(cfg DatabaseConfig, log *logrus.Logger) *sql.DB {
	if !cfg.Configured() {
		log.Warn("user store not configured, demo mode enabled")
		return nil
	}

	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		log.WithError(errors.Wrap(err, "open database")).Warn("user store unavailable, demo mode enabled")
		return nil
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		log.WithError(errors.Wrap(err, "ping database")).Warn("user store unreachable, demo mode enabled")
		return nil
	}

	log.Info("connected to user store")
	return db
}

func CloseDB(db *sql.DB, log *logrus.Logger) {
	if db == nil {
		return
	}

	db.Close()
	log.Info("user store connection closed")
}
