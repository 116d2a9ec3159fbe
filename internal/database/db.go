// Package database opens connection pools for the supported engines.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/bawdo/sqlprobe/internal/config"
	"github.com/bawdo/sqlprobe/queries"
)

var driverName = map[queries.Dialect]string{
	queries.Postgres: "pgx",
	queries.MySQL:    "mysql",
	queries.SQLite:   "sqlite",
}

// Driver returns the database/sql driver name registered for d.
func Driver(d queries.Dialect) (string, bool) {
	name, ok := driverName[d]
	return name, ok
}

// Open opens and pings a pool for cfg. An in-memory SQLite database is
// private to each connection, so its pool is limited to one.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	driver, ok := Driver(cfg.Engine)
	if !ok {
		return nil, fmt.Errorf("no driver for engine %q", cfg.Engine)
	}
	dsn := cfg.DSN()

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if cfg.Engine == queries.SQLite && isMemory(dsn) {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	if logger != nil {
		logger.Info("database connected",
			slog.String("engine", string(cfg.Engine)),
			slog.String("dsn", SanitizeDSN(dsn)),
			slog.Int("max_open_conns", maxOpen),
		)
	}
	return db, nil
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// SanitizeDSN masks the password in URL and MySQL style DSNs.
func SanitizeDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err == nil && u.Scheme != "" && u.User != nil {
		if _, hasPass := u.User.Password(); hasPass {
			// Rebuilt by hand so the mask is not percent-encoded.
			masked := u.Scheme + "://" + u.User.Username() + ":****@" + u.Host + u.Path
			if u.RawQuery != "" {
				masked += "?" + u.RawQuery
			}
			return masked
		}
		return dsn
	}

	// user:pass@tcp(host)/db
	if atIdx := strings.LastIndex(dsn, "@"); atIdx > 0 {
		userPass := dsn[:atIdx]
		if colonIdx := strings.Index(userPass, ":"); colonIdx >= 0 {
			return userPass[:colonIdx+1] + "****" + dsn[atIdx:]
		}
	}

	return dsn
}
