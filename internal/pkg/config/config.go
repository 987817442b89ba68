package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, storage), security settings
// - default: Values common across all environments (timezone, fees, timeouts), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	Booking    BookingConfig
	PreCheckIn PreCheckInConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// StorageConfig selects the key-value driver. Badger is the embedded default;
// postgres keeps the same key/JSON layout in a single table for deployments
// that need more than one instance.
type StorageConfig struct {
	Driver     string `envconfig:"STORAGE_DRIVER" default:"badger"`
	BadgerPath string `envconfig:"BADGER_PATH" default:"./data/kv"`

	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"lumiere"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"lumiere"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-PreCheckIn-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type BookingConfig struct {
	// TODO: product to confirm the cleaning fee. The legacy quote screen
	// charged 75.00 while checkout charged 50.00; one value is normative.
	CleaningFeeCents int64 `envconfig:"BOOKING_CLEANING_FEE_CENTS" default:"5000"`

	PaymentDelay       time.Duration `envconfig:"PAYMENT_DELAY" default:"1500ms"`
	PaymentDeclineRate float64       `envconfig:"PAYMENT_DECLINE_RATE" default:"0.1"`
	PaymentTimeout     time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"10s"`
}

type PreCheckInConfig struct {
	SessionTTL time.Duration `envconfig:"PRECHECKIN_SESSION_TTL" default:"24h"`
}

func (c *StorageConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	// .env is a local-development convenience; exported variables win
	_ = godotenv.Load()

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
		Storage: StorageConfig{
			Driver:     "badger",
			BadgerPath: "", // Tests supply a temp dir
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Paris",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-unit-suites",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:5173"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-PreCheckIn-Token"},
		},
		Booking: BookingConfig{
			CleaningFeeCents:   5000,
			PaymentDelay:       0, // No artificial latency in tests
			PaymentDeclineRate: 0,
			PaymentTimeout:     time.Second,
		},
		PreCheckIn: PreCheckInConfig{
			SessionTTL: 24 * time.Hour,
		},
	}
}
