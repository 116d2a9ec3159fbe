// Package config loads database connection parameters from the
// environment and optional .env files.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/bawdo/sqlprobe/queries"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SQLPROBE"

// DefaultEnvFile is read by Load when no files are named.
const DefaultEnvFile = ".env"

// Config holds connection parameters.
type Config struct {
	Engine          queries.Dialect
	URL             string // full DSN; overrides the discrete fields
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// keys maps viper keys to the environment names read for them, in order
// of precedence. The bare names are kept for existing .env files.
var keys = map[string][]string{
	"engine":            {"SQLPROBE_ENGINE"},
	"url":               {"SQLPROBE_DATABASE_URL", "DATABASE_URL"},
	"host":              {"SQLPROBE_HOST", "HOST"},
	"port":              {"SQLPROBE_PORT", "PORT"},
	"user":              {"SQLPROBE_USER", "USER"},
	"password":          {"SQLPROBE_PASSWORD", "PASSWORD"},
	"database":          {"SQLPROBE_DATABASE", "DATABASE"},
	"sslmode":           {"SQLPROBE_SSLMODE"},
	"max_open_conns":    {"SQLPROBE_MAX_OPEN_CONNS"},
	"conn_max_lifetime": {"SQLPROBE_CONN_MAX_LIFETIME"},
}

// Load reads configuration from the process environment, then applies
// values from each existing .env file in files, which override the
// environment. Missing files are skipped. With no files, DefaultEnvFile
// is tried.
func Load(fs afero.Fs, files ...string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	v.SetDefault("engine", string(queries.Postgres))
	v.SetDefault("host", "localhost")
	v.SetDefault("port", 5432)
	v.SetDefault("sslmode", "disable")
	v.SetDefault("max_open_conns", 4)
	v.SetDefault("conn_max_lifetime", 30*time.Minute)

	for key, names := range keys {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if err := applyEnvFile(v, fs, f); err != nil {
			return nil, err
		}
	}

	engine, err := queries.ParseDialect(v.GetString("engine"))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := &Config{
		Engine:          engine,
		URL:             v.GetString("url"),
		Host:            v.GetString("host"),
		Port:            v.GetInt("port"),
		User:            v.GetString("user"),
		Password:        v.GetString("password"),
		Database:        v.GetString("database"),
		SSLMode:         v.GetString("sslmode"),
		MaxOpenConns:    v.GetInt("max_open_conns"),
		ConnMaxLifetime: v.GetDuration("conn_max_lifetime"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvFile sets every known variable found in the .env file at path.
// Bare names are applied first so prefixed names win.
func applyEnvFile(v *viper.Viper, fs afero.Fs, path string) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if !exists {
		return nil
	}
	f, err := fs.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	for key, names := range keys {
		for i := len(names) - 1; i >= 0; i-- {
			if val, ok := env[names[i]]; ok {
				v.Set(key, val)
			}
		}
	}
	return nil
}

// Validate checks the fields needed to build a DSN.
func (c *Config) Validate() error {
	if c.MaxOpenConns < 0 {
		return fmt.Errorf("config: max_open_conns must not be negative, got %d", c.MaxOpenConns)
	}
	if c.URL != "" || c.Engine == queries.SQLite {
		return nil
	}
	if c.Host == "" {
		return errors.New("config: host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port out of range: %d", c.Port)
	}
	if c.Database == "" {
		return errors.New("config: database is required")
	}
	return nil
}

// DSN renders the data source name for the configured engine.
func (c *Config) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	addr := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	switch c.Engine {
	case queries.MySQL:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = addr
		mc.DBName = c.Database
		return mc.FormatDSN()
	case queries.SQLite:
		if c.Database == "" {
			return ":memory:"
		}
		return c.Database
	default:
		u := url.URL{
			Scheme:   "postgres",
			Host:     addr,
			Path:     "/" + c.Database,
			RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
		}
		if c.User != "" {
			u.User = url.UserPassword(c.User, c.Password)
		}
		return u.String()
	}
}
