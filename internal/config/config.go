package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=banking_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultHTTPAddr = ":8080"
const defaultMigrationsDir = "migrations"

type Config struct {
	// DatabaseDSN is in libpq keyword/value form, for database/sql.
	DatabaseDSN string
	// DatabaseURL is the same connection in URL form, for golang-migrate.
	DatabaseURL   string
	HTTPAddr      string
	MigrationsDir string
	ChannelID     string
	ChannelKey    string
}

func Load() (Config, error) {
	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	addr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if addr == "" {
		addr = defaultHTTPAddr
	}

	migrationsDir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = defaultMigrationsDir
	}

	settings := parseConnectionString(conn)

	return Config{
		DatabaseDSN:   settings.keywordValueDSN(),
		DatabaseURL:   settings.urlDSN(),
		HTTPAddr:      addr,
		MigrationsDir: migrationsDir,
		// Basic auth stays off unless both credentials are provided.
		ChannelID:  strings.TrimSpace(os.Getenv("CHANNEL_ID")),
		ChannelKey: strings.TrimSpace(os.Getenv("CHANNEL_KEY")),
	}, nil
}

type connectionSettings struct {
	host     string
	port     string
	dbname   string
	user     string
	password string
	sslmode  string
	extra    []string
}

// parseConnectionString accepts an ADO.NET style "Host=...;Port=..."
// string and splits it into the individual settings.
func parseConnectionString(raw string) connectionSettings {
	settings := connectionSettings{
		host:    "localhost",
		port:    "5432",
		sslmode: "disable",
	}

	for _, part := range strings.Split(raw, ";") {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			settings.host = val
		case "port":
			settings.port = val
		case "database":
			settings.dbname = val
		case "username":
			settings.user = val
		case "password":
			settings.password = val
		case "timeout", "connect timeout":
			settings.extra = append(settings.extra, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			settings.extra = append(settings.extra, "statement_timeout="+val+"s")
		case "sslmode":
			settings.sslmode = val
		default:
			settings.extra = append(settings.extra, key+"="+val)
		}
	}

	return settings
}

func (s connectionSettings) keywordValueDSN() string {
	out := []string{
		"host=" + s.host,
		"port=" + s.port,
	}
	if s.dbname != "" {
		out = append(out, "dbname="+s.dbname)
	}
	if s.user != "" {
		out = append(out, "user="+s.user)
	}
	if s.password != "" {
		out = append(out, "password="+s.password)
	}
	out = append(out, s.extra...)
	out = append(out, "sslmode="+s.sslmode)

	return strings.Join(out, " ")
}

func (s connectionSettings) urlDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(s.user),
		url.QueryEscape(s.password),
		s.host,
		s.port,
		s.dbname,
		s.sslmode,
	)
}
