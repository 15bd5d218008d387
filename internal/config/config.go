package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache

	Shipping Shipping `validate:"required"`

	Origin Origin `validate:"required"`

	Balance Balance `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

// Shipping configures the carrier-aggregation API. An empty APIKey is allowed here;
// rate lookups report it as a precondition failure instead of failing startup.
type Shipping struct {
	APIKey   string
	BaseURL  string        `validate:"required,url"`
	Timeout  time.Duration `validate:"gt=0"`
	Carriers []string      `validate:"required,min=1,dive,required"`

	RateCacheCapacity int           `validate:"gte=1"`
	RateCacheTTL      time.Duration `validate:"gt=0"`
}

// Origin is the store address packages ship from.
type Origin struct {
	Name       string `validate:"required"`
	Company    string
	Email      string `validate:"omitempty,email"`
	Phone      string
	Street     string `validate:"required"`
	Number     string
	District   string
	City       string `validate:"required"`
	State      string `validate:"required"`
	Country    string `validate:"required,iso3166_1_alpha2"`
	PostalCode string `validate:"required"`
}

type Balance struct {
	TimeZone      string `validate:"required,timezone"`
	DefaultWindow int    `validate:"gte=1"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: envList("ALLOWED_CORS_ORIGINS", "http://localhost:3000"),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "barfer-service"),
			Topic:   env("KAFKA_TOPIC", "orders"),
			Brokers: envList("KAFKA_BROKERS", "localhost:9092"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "barfer"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Shipping: Shipping{
			APIKey:   env("ENVIA_API_KEY", ""),
			BaseURL:  env("ENVIA_API_URL", "https://api.envia.com"),
			Timeout:  envDuration("ENVIA_TIMEOUT", 5*time.Second),
			Carriers: envList("ENVIA_CARRIERS", "oca,andreani"),

			RateCacheCapacity: envInt("RATE_CACHE_CAPACITY", 500),
			RateCacheTTL:      envDuration("RATE_CACHE_TTL", 10*time.Minute),
		},

		Origin: Origin{
			Name:       env("STORE_ORIGIN_NAME", "Barfer"),
			Company:    env("STORE_ORIGIN_COMPANY", "Barfer"),
			Email:      env("STORE_ORIGIN_EMAIL", "ventas@barferalimento.com"),
			Phone:      env("STORE_ORIGIN_PHONE", "+541155551234"),
			Street:     env("STORE_ORIGIN_STREET", "Av. Rivadavia"),
			Number:     env("STORE_ORIGIN_NUMBER", "5000"),
			District:   env("STORE_ORIGIN_DISTRICT", "Caballito"),
			City:       env("STORE_ORIGIN_CITY", "Buenos Aires"),
			State:      "BA",
			Country:    "AR",
			PostalCode: env("STORE_ORIGIN_POSTAL_CODE", "1406"),
		},

		Balance: Balance{
			TimeZone:      env("BALANCE_TIMEZONE", "America/Argentina/Buenos_Aires"),
			DefaultWindow: envInt("BALANCE_DEFAULT_WINDOW_YEARS", 3),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback string) []string {
	raw := env(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
