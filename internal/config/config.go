package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the HUD daemon.
type Config struct {
	AppName     string
	Environment string
	HTTP        HTTPConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Remote      RemoteConfig
	LocalStore  LocalStoreConfig
	Device      DeviceConfig
	Sync        SyncConfig
	Focus       FocusConfig
	Dashboard   DashboardConfig
	Context     ContextConfig
	Logger      LoggerConfig
	Migrations  MigrationsConfig
}

type HTTPConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	URL             string
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	MaxOpenConns    int
	MaxIdleConns    int
	MaxConnLifetime time.Duration
	SSLMode         string
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// RemoteConfig controls the best-effort mirror. Disabling it runs the HUD
// in degraded mode from the start.
type RemoteConfig struct {
	Enabled       bool
	Timeout       time.Duration
	CheckInterval time.Duration
}

type LocalStoreConfig struct {
	Path string
}

type DeviceConfig struct {
	// ID overrides the generated device identity when set.
	ID       string
	Timezone string
}

type SyncConfig struct {
	ProfileDebounce time.Duration
	QueueSize       int
}

type FocusConfig struct {
	TickInterval   time.Duration
	LiveSessionTTL time.Duration
}

type DashboardConfig struct {
	DailyListRule string
}

type ContextConfig struct {
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

type MigrationsConfig struct {
	Enabled bool
	Path    string
}

// Load reads configuration from environment variables (optionally .env)
// and applies defaults so the daemon can boot with no remote at all.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "quantix"),
		Environment: getString("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Host:         getString("SERVER_HOST", "127.0.0.1"),
			Port:         getString("SERVER_PORT", "7777"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		Database: DatabaseConfig{
			URL:             os.Getenv("DATABASE_URL"),
			Host:            getString("DB_HOST", "localhost"),
			Port:            getString("DB_PORT", "5432"),
			Name:            getString("DB_NAME", "quantix"),
			User:            getString("DB_USER", "quantix"),
			Password:        os.Getenv("DB_PASSWORD"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 4),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 1),
			MaxConnLifetime: getDuration("DB_CONN_LIFETIME", time.Hour),
			SSLMode:         getString("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getString("REDIS_URL", "redis://localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0),
		},
		Remote: RemoteConfig{
			Enabled:       getBool("REMOTE_ENABLED", true),
			Timeout:       getDuration("REMOTE_TIMEOUT", 5*time.Second),
			CheckInterval: getDuration("REMOTE_CHECK_INTERVAL", 10*time.Second),
		},
		LocalStore: LocalStoreConfig{
			Path: getString("LOCAL_STORE_PATH", "./data/quantix.db"),
		},
		Device: DeviceConfig{
			ID:       os.Getenv("DEVICE_ID"),
			Timezone: getString("HUD_TIMEZONE", "UTC"),
		},
		Sync: SyncConfig{
			ProfileDebounce: getDuration("PROFILE_DEBOUNCE", 1500*time.Millisecond),
			QueueSize:       getInt("MIRROR_QUEUE_SIZE", 256),
		},
		Focus: FocusConfig{
			TickInterval:   getDuration("FOCUS_TICK_INTERVAL", time.Second),
			LiveSessionTTL: getDuration("LIVE_SESSION_TTL", 2*time.Minute),
		},
		Dashboard: DashboardConfig{
			DailyListRule: getString("DAILY_LIST_RULE", "created"),
		},
		Context: ContextConfig{
			RequestTimeout:  getDuration("REQUEST_TIMEOUT_SECONDS", 5*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
		Migrations: MigrationsConfig{
			Enabled: getBool("RUN_MIGRATIONS", false),
			Path:    getString("MIGRATIONS_PATH", "./assets/migrations"),
		},
	}

	if cfg.Database.URL == "" {
		cfg.Database.URL = buildPostgresURL(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Dashboard.DailyListRule {
	case "created", "completed", "hybrid":
	default:
		return fmt.Errorf("DAILY_LIST_RULE must be created, completed or hybrid, got %q", c.Dashboard.DailyListRule)
	}
	if c.Sync.ProfileDebounce <= 0 {
		return fmt.Errorf("PROFILE_DEBOUNCE must be positive")
	}
	if c.Sync.QueueSize <= 0 {
		return fmt.Errorf("MIRROR_QUEUE_SIZE must be positive")
	}
	if _, err := time.LoadLocation(c.Device.Timezone); err != nil {
		return fmt.Errorf("HUD_TIMEZONE: %w", err)
	}
	return nil
}

func buildPostgresURL(cfg *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

// Address returns the HTTP listen address for the fasthttp server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.HTTP.Host, c.HTTP.Port)
}
