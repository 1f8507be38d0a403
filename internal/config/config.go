package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

// Config captures the runtime configuration for the service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Clock    ClockConfig    `yaml:"clock"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig: DSN vacío => storage in-memory.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

// ClockConfig fija la zona usada para decidir "hoy" en los schedules.
// Vacío => hora local del host.
type ClockConfig struct {
	Timezone string `yaml:"timezone"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "foster-intake",
		},
	}
}

// Load arma la config: defaults, luego el YAML de CONFIG_FILE (si existe),
// luego variables de entorno.
func Load() (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	port := os.Getenv("PORT")
	if strings.TrimSpace(port) != "" {
		port = ":" + strings.TrimPrefix(strings.TrimSpace(port), ":")
	}
	cfg.Server.Addr = firstNonEmpty(os.Getenv("SERVER_ADDR"), port, cfg.Server.Addr)
	cfg.Server.ReadTimeout = parseDurationWithDefault(os.Getenv("READ_TIMEOUT"), cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = parseDurationWithDefault(os.Getenv("WRITE_TIMEOUT"), cfg.Server.WriteTimeout)

	cfg.Database.DSN = firstNonEmpty(os.Getenv("DB_DSN"), os.Getenv("DATABASE_URL"), cfg.Database.DSN)

	cfg.Log.Level = firstNonEmpty(os.Getenv("LOG_LEVEL"), cfg.Log.Level)
	cfg.Log.Format = firstNonEmpty(os.Getenv("LOG_FORMAT"), cfg.Log.Format)
	cfg.Log.App = firstNonEmpty(os.Getenv("APP_NAME"), cfg.Log.App)

	cfg.Clock.Timezone = firstNonEmpty(os.Getenv("TZ_NAME"), cfg.Clock.Timezone)
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server address must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resuelve Clock.Timezone (nil => hora local del host).
func (c Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Clock.Timezone)
	if tz == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("config: unknown timezone %q: %w", tz, err)
	}
	return loc, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func parseDurationWithDefault(value string, def time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
