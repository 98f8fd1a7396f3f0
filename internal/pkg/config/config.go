package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timeouts, pricing constants, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Pricing   PricingConfig
	Forecast  ForecastConfig
	Catalog   CatalogConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// Driver selects the persistence backend for the reservation ledger and
// forecast store: "postgres" or "memory".
type DBConfig struct {
	Driver   string `envconfig:"DB_DRIVER" default:"postgres"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"booking"`
	Password string `envconfig:"DB_PASSWORD" default:"booking"`
	DBName   string `envconfig:"DB_NAME" default:"booking"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// PricingConfig holds the weather surcharge parameters. TierMaxDiffs and
// TierPcts are parallel: the first threshold the temperature difference falls
// under selects the percentage, and TierPcts carries one extra entry for
// differences beyond the last threshold.
type PricingConfig struct {
	IdealTempC   float64   `envconfig:"PRICING_IDEAL_TEMP_C" default:"21"`
	TierMaxDiffs []float64 `envconfig:"PRICING_TIER_MAX_DIFFS" default:"2,5,10,20"`
	TierPcts     []float64 `envconfig:"PRICING_TIER_PCTS" default:"0,10,20,30,50"`
}

type ForecastConfig struct {
	MinTempC float64       `envconfig:"FORECAST_MIN_TEMP_C" default:"-5"`
	MaxTempC float64       `envconfig:"FORECAST_MAX_TEMP_C" default:"35"`
	CacheTTL time.Duration `envconfig:"FORECAST_CACHE_TTL" default:"10m"`
}

// CatalogConfig selects where room metadata comes from. Mode "local" reads the
// rooms table in our own database; mode "http" calls a remote room service.
type CatalogConfig struct {
	Mode    string        `envconfig:"CATALOG_MODE" default:"local"`
	BaseURL string        `envconfig:"CATALOG_BASE_URL" default:"http://room-service:85"`
	Timeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"3s"`
}

type RateLimitConfig struct {
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Driver:   "memory",
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Pricing: PricingConfig{
			IdealTempC:   21,
			TierMaxDiffs: []float64{2, 5, 10, 20},
			TierPcts:     []float64{0, 10, 20, 30, 50},
		},
		Forecast: ForecastConfig{
			MinTempC: -5,
			MaxTempC: 35,
			CacheTTL: time.Minute,
		},
		Catalog: CatalogConfig{
			Mode:    "local",
			Timeout: time.Second,
		},
	}
}
