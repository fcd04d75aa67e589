package config

import (
	"beforeafter/version"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Config holds runtime configuration for the gallery admin server.
type Config struct {
	LogLevel             string
	LogFilePath          string
	Port                 int
	DatabaseURL          string
	SQLitePragmasEnabled bool
	SQLiteBusyTimeoutMS  int
	SQLiteJournalMode    string
	SQLiteSynchronous    string
	SQLiteForeignKeys    bool
	SQLiteMaxOpenConns   int
	SQLiteMaxIdleConns   int
	SQLiteConnMaxIdleSec int
	SQLiteConnMaxLifeSec int

	// Admin authentication
	AdminPassword     string // plain text; hashed at startup when AdminPasswordHash is empty
	AdminPasswordHash string // bcrypt hash, takes precedence over AdminPassword
	SessionTTLHours   int

	// Nonce signing
	NonceSecret    string // random secret generated at startup when empty
	NonceTickHours int

	// Render cache
	CacheMaxEntries int

	// Runtime self-monitoring
	GoroutineMonitorIntervalSeconds int
	GoroutineWarnThreshold          int

	OpenBrowser bool
}

// Settings is the global configuration instance populated from environment variables and flags.
var Settings *Config

func init() {
	Settings = &Config{
		LogLevel:             getEnv("LOG_LEVEL", "INFO"),
		LogFilePath:          getEnv("LOG_FILE", "./beforeafter.log"),
		Port:                 getEnvInt("PORT", 8390),
		DatabaseURL:          getEnv("DATABASE_URL", "beforeafter.db"),
		SQLitePragmasEnabled: getEnvBool("SQLITE_PRAGMAS_ENABLED", true),
		SQLiteBusyTimeoutMS:  getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 5000),
		SQLiteJournalMode:    getEnv("SQLITE_JOURNAL_MODE", "WAL"),
		SQLiteSynchronous:    getEnv("SQLITE_SYNCHRONOUS", "NORMAL"),
		SQLiteForeignKeys:    getEnvBool("SQLITE_FOREIGN_KEYS", true),
		SQLiteMaxOpenConns:   getEnvInt("SQLITE_MAX_OPEN_CONNS", 1),
		SQLiteMaxIdleConns:   getEnvInt("SQLITE_MAX_IDLE_CONNS", 1),
		SQLiteConnMaxIdleSec: getEnvInt("SQLITE_CONN_MAX_IDLE_SECONDS", 300),
		SQLiteConnMaxLifeSec: getEnvInt("SQLITE_CONN_MAX_LIFETIME_SECONDS", 0),

		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		SessionTTLHours:   getEnvInt("SESSION_TTL_HOURS", 24),

		NonceSecret:    getEnv("NONCE_SECRET", ""),
		NonceTickHours: getEnvInt("NONCE_TICK_HOURS", 12),

		CacheMaxEntries: getEnvInt("CACHE_MAX_ENTRIES", 500),

		GoroutineMonitorIntervalSeconds: getEnvInt("GOROUTINE_MONITOR_INTERVAL_SECONDS", 30),
		GoroutineWarnThreshold:          getEnvInt("GOROUTINE_WARN_THRESHOLD", 1000),

		OpenBrowser: getEnvBool("OPEN_BROWSER", false),
	}
}

// ParseFlags parses command-line flags, applies any overrides to the package-level Settings,
// and handles --help and --version (print and exit).
func ParseFlags() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "BeforeAfter gallery admin server\n\n")
		fmt.Fprintf(out, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintln(out, "Options:")
		flag.PrintDefaults()
		fmt.Fprintln(out, "\nEnvironment variables:")
		fmt.Fprintln(out, "  LOG_LEVEL                         Log level (DEBUG, INFO, WARN, ERROR)")
		fmt.Fprintln(out, "  LOG_FILE                          Log file path (default ./beforeafter.log)")
		fmt.Fprintln(out, "  PORT                              HTTP server port (default 8390)")
		fmt.Fprintln(out, "  DATABASE_URL                      SQLite database path (default beforeafter.db)")
		fmt.Fprintln(out, "  SQLITE_PRAGMAS_ENABLED            Enable SQLite PRAGMAs (true/false, default true)")
		fmt.Fprintln(out, "  SQLITE_BUSY_TIMEOUT_MS            SQLite busy_timeout in milliseconds (default 5000)")
		fmt.Fprintln(out, "  SQLITE_JOURNAL_MODE               SQLite journal_mode (default WAL)")
		fmt.Fprintln(out, "  SQLITE_SYNCHRONOUS                SQLite synchronous (default NORMAL)")
		fmt.Fprintln(out, "  SQLITE_FOREIGN_KEYS               Enable SQLite foreign_keys (true/false, default true)")
		fmt.Fprintln(out, "  SQLITE_MAX_OPEN_CONNS             SQLite MaxOpenConns (default 1)")
		fmt.Fprintln(out, "  SQLITE_MAX_IDLE_CONNS             SQLite MaxIdleConns (default 1)")
		fmt.Fprintln(out, "  SQLITE_CONN_MAX_IDLE_SECONDS      SQLite ConnMaxIdleTime in seconds (default 300)")
		fmt.Fprintln(out, "  SQLITE_CONN_MAX_LIFETIME_SECONDS  SQLite ConnMaxLifetime in seconds (default 0)")
		fmt.Fprintln(out, "  ADMIN_PASSWORD                    Admin login password (hashed at startup)")
		fmt.Fprintln(out, "  ADMIN_PASSWORD_HASH               Bcrypt hash of the admin password (overrides ADMIN_PASSWORD)")
		fmt.Fprintln(out, "  SESSION_TTL_HOURS                 Admin session lifetime in hours (default 24)")
		fmt.Fprintln(out, "  NONCE_SECRET                      Secret for nonce signing (random per start when empty)")
		fmt.Fprintln(out, "  NONCE_TICK_HOURS                  Nonce validity window in hours (default 12)")
		fmt.Fprintln(out, "  CACHE_MAX_ENTRIES                 Maximum render cache entries (default 500)")
		fmt.Fprintln(out, "  GOROUTINE_MONITOR_INTERVAL_SECONDS Interval seconds for goroutine monitor (default 30)")
		fmt.Fprintln(out, "  GOROUTINE_WARN_THRESHOLD          Goroutine count warning threshold (default 1000)")
		fmt.Fprintln(out, "  OPEN_BROWSER                      Open the admin UI in a browser at startup (default false)")
	}

	port := flag.Int("port", Settings.Port, "HTTP server port (overrides PORT)")
	db := flag.String("db", Settings.DatabaseURL, "SQLite database path (overrides DATABASE_URL)")
	sqlitePragmasEnabled := flag.Bool("sqlite-pragmas", Settings.SQLitePragmasEnabled, "Enable SQLite PRAGMAs (overrides SQLITE_PRAGMAS_ENABLED)")
	sqliteBusyTimeoutMS := flag.Int("sqlite-busy-timeout-ms", Settings.SQLiteBusyTimeoutMS, "SQLite busy_timeout in milliseconds (overrides SQLITE_BUSY_TIMEOUT_MS)")
	sqliteJournalMode := flag.String("sqlite-journal-mode", Settings.SQLiteJournalMode, "SQLite journal_mode (overrides SQLITE_JOURNAL_MODE)")
	sqliteSynchronous := flag.String("sqlite-synchronous", Settings.SQLiteSynchronous, "SQLite synchronous (overrides SQLITE_SYNCHRONOUS)")
	sqliteForeignKeys := flag.Bool("sqlite-foreign-keys", Settings.SQLiteForeignKeys, "Enable SQLite foreign_keys PRAGMA (overrides SQLITE_FOREIGN_KEYS)")
	logLevel := flag.String("log-level", Settings.LogLevel, "Log level: DEBUG, INFO, WARN, ERROR (overrides LOG_LEVEL)")
	logFile := flag.String("log-file", Settings.LogFilePath, "Log file path (overrides LOG_FILE)")
	sessionTTL := flag.Int("session-ttl-hours", Settings.SessionTTLHours, "Admin session lifetime in hours (overrides SESSION_TTL_HOURS)")
	nonceTick := flag.Int("nonce-tick-hours", Settings.NonceTickHours, "Nonce validity window in hours (overrides NONCE_TICK_HOURS)")
	cacheMax := flag.Int("cache-max-entries", Settings.CacheMaxEntries, "Maximum render cache entries (overrides CACHE_MAX_ENTRIES)")
	openBrowser := flag.Bool("open-browser", Settings.OpenBrowser, "Open the admin UI in a browser at startup (overrides OPEN_BROWSER)")

	showHelp := flag.Bool("help", false, "Show help and exit")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetBuildInfo())
		os.Exit(0)
	}

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	Settings.Port = *port
	Settings.DatabaseURL = *db
	Settings.SQLitePragmasEnabled = *sqlitePragmasEnabled
	Settings.SQLiteBusyTimeoutMS = *sqliteBusyTimeoutMS
	Settings.SQLiteJournalMode = *sqliteJournalMode
	Settings.SQLiteSynchronous = *sqliteSynchronous
	Settings.SQLiteForeignKeys = *sqliteForeignKeys
	Settings.LogLevel = *logLevel
	Settings.LogFilePath = *logFile
	Settings.SessionTTLHours = *sessionTTL
	Settings.NonceTickHours = *nonceTick
	Settings.CacheMaxEntries = *cacheMax
	Settings.OpenBrowser = *openBrowser
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
