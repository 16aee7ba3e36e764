package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, upstream URL), security settings
// - default: Values common across all environments (pricing policy, timeouts, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Pricing  PricingConfig
	Upstream UpstreamConfig
	Payment  PaymentConfig
	Session  SessionConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Brokers may be empty; booking events are then only logged.
type KafkaConfig struct {
	Brokers      []string `envconfig:"KAFKA_BROKERS" default:""`
	BookingTopic string   `envconfig:"KAFKA_BOOKING_TOPIC" default:"booking.submitted"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

// Tokens are issued by the main homestay backend; this service only verifies them.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type PricingConfig struct {
	ServiceFeeRate    float64       `envconfig:"PRICING_SERVICE_FEE_RATE" default:"0.10"`
	MinStayNights     int           `envconfig:"PRICING_MIN_STAY_NIGHTS" default:"1"`
	MaxStayNights     int           `envconfig:"PRICING_MAX_STAY_NIGHTS" default:"365"`
	WeekendMultiplier float64       `envconfig:"PRICING_WEEKEND_MULTIPLIER" default:"1.2"`
	RateSourceTimeout time.Duration `envconfig:"PRICING_RATE_SOURCE_TIMEOUT" default:"3s"`
	RuleCacheTTL      time.Duration `envconfig:"PRICING_RULE_CACHE_TTL" default:"5m"`
	CalendarCacheTTL  time.Duration `envconfig:"PRICING_CALENDAR_CACHE_TTL" default:"60s"`
	TimeZone          string        `envconfig:"PRICING_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
}

type UpstreamConfig struct {
	BaseURL string        `envconfig:"UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"5s"`
}

type PaymentConfig struct {
	PollInterval time.Duration `envconfig:"PAYMENT_POLL_INTERVAL" default:"3s"`
	PollTimeout  time.Duration `envconfig:"PAYMENT_POLL_TIMEOUT" default:"10m"`
}

type SessionConfig struct {
	TTL            time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments inject variables directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
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
			TimeZone: "Asia/Ho_Chi_Minh",
			MaxConns: 5,
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Kafka: KafkaConfig{
			BookingTopic: "booking.submitted",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Ho_Chi_Minh",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Pricing: PricingConfig{
			ServiceFeeRate:    0.10,
			MinStayNights:     1,
			MaxStayNights:     365,
			WeekendMultiplier: 1.2,
			RateSourceTimeout: time.Second,
			RuleCacheTTL:      time.Minute,
			CalendarCacheTTL:  time.Minute,
			TimeZone:          "Asia/Ho_Chi_Minh",
		},
		Upstream: UpstreamConfig{
			BaseURL: "http://localhost:8000",
			Timeout: time.Second,
		},
		Payment: PaymentConfig{
			PollInterval: 10 * time.Millisecond,
			PollTimeout:  time.Second,
		},
		Session: SessionConfig{
			TTL:            time.Minute,
			IdempotencyTTL: time.Minute,
		},
	}
}

// Validate rejects settings that would make every quote wrong rather than
// failing later on the first request.
func (c Config) Validate() error {
	return validation.Errors{
		"pricing": validation.ValidateStruct(&c.Pricing,
			validation.Field(&c.Pricing.ServiceFeeRate, validation.Min(0.0), validation.Max(1.0)),
			validation.Field(&c.Pricing.MinStayNights, validation.Required, validation.Min(1)),
			// 3660 is the hard ceiling of the stay domain
			validation.Field(&c.Pricing.MaxStayNights, validation.Required,
				validation.Min(c.Pricing.MinStayNights), validation.Max(3660)),
			validation.Field(&c.Pricing.WeekendMultiplier, validation.Required, validation.Min(1.0)),
			validation.Field(&c.Pricing.TimeZone, validation.Required),
		),
		"upstream": validation.ValidateStruct(&c.Upstream,
			validation.Field(&c.Upstream.BaseURL, validation.Required, is.RequestURL),
			validation.Field(&c.Upstream.Timeout, validation.Required),
		),
		"payment": validation.ValidateStruct(&c.Payment,
			validation.Field(&c.Payment.PollInterval, validation.Required),
			validation.Field(&c.Payment.PollTimeout, validation.Required),
		),
	}.Filter()
}
