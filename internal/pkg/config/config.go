package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (policy hours, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
	Payment PaymentConfig
	Lot     LotConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
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
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// BookingConfig carries the reservation policy knobs.
type BookingConfig struct {
	MinHours          int `envconfig:"BOOKING_MIN_HOURS" default:"1"`
	MaxHours          int `envconfig:"BOOKING_MAX_HOURS" default:"24"`
	AdvanceDays       int `envconfig:"BOOKING_ADVANCE_DAYS" default:"7"`
	CancellationHours int `envconfig:"BOOKING_CANCELLATION_HOURS" default:"2"`
	ListPageSize      int `envconfig:"BOOKING_LIST_PAGE_SIZE" default:"100"`
}

// PaymentConfig selects the settlement path. DemoMode resolves payments
// synchronously; with it off, payments stay in processing until the
// gateway reports a terminal status.
type PaymentConfig struct {
	Currency      string `envconfig:"PAYMENT_CURRENCY" default:"USD"`
	DemoMode      bool   `envconfig:"PAYMENT_DEMO_MODE" default:"true"`
	Gateway       string `envconfig:"PAYMENT_GATEWAY" default:"demo"`
	DefaultMethod string `envconfig:"PAYMENT_DEFAULT_METHOD" default:"card"`
}

type LotConfig struct {
	Rows            int   `envconfig:"LOT_ROWS" default:"5"`
	Columns         int   `envconfig:"LOT_COLUMNS" default:"10"`
	HourlyRateCents int64 `envconfig:"LOT_HOURLY_RATE_CENTS" default:"500"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
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
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Booking: BookingConfig{
			MinHours:          1,
			MaxHours:          24,
			AdvanceDays:       7,
			CancellationHours: 2,
			ListPageSize:      100,
		},
		Payment: PaymentConfig{
			Currency:      "USD",
			DemoMode:      true,
			Gateway:       "demo",
			DefaultMethod: "card",
		},
		Lot: LotConfig{
			Rows:            5,
			Columns:         10,
			HourlyRateCents: 500,
		},
	}
}
