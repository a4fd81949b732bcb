package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores database connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns the postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		d.User, d.Pass, net.JoinHostPort(d.Host, d.Port), d.Name)
}

// Redis stores snapshot cache settings.
type Redis struct {
	Addr        string
	Password    string
	DB          int
	SnapshotTTL time.Duration
}

// Kafka stores event transport settings. Empty brokers disable the
// consumer/producer entirely.
type Kafka struct {
	Brokers     []string
	OrdersTopic string
	GroupID     string
	StatusTopic string
}

// UsersGateway stores the actor-name resolver settings.
type UsersGateway struct {
	BaseURL     string
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Auth stores bearer-token verification settings.
type Auth struct {
	Secret string
}

// Pprof stores basic auth credentials for the profiling endpoints.
// Loopback clients skip the check.
type Pprof struct {
	User string
	Pass string
}

// RateLimit stores per-client request limiting settings.
type RateLimit struct {
	Limit  int
	Window time.Duration
}

// Delivery stores delivery usecase settings.
type Delivery struct {
	OperationTimeout time.Duration
}

// Config stores service settings.
type Config struct {
	Port      int
	DB        DB
	Redis     Redis
	Kafka     Kafka
	Users     UsersGateway
	Auth      Auth
	Pprof     Pprof
	RateLimit RateLimit
	Delivery  Delivery
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Port:      defaultPort,
		DB:        DefaultDB(),
		Redis:     DefaultRedis(),
		Kafka:     DefaultKafka(),
		Users:     DefaultUsersGateway(),
		RateLimit: DefaultRateLimit(),
		Delivery:  DefaultDelivery(),
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Port = p
	}

	readEnvString("POSTGRES_HOST", &cfg.DB.Host)
	readEnvString("POSTGRES_USER", &cfg.DB.User)
	readEnvString("POSTGRES_PASSWORD", &cfg.DB.Pass)
	readEnvString("POSTGRES_DB", &cfg.DB.Name)
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid POSTGRES_PORT: %q", v)
		}
		cfg.DB.Port = v
	}

	readEnvString("REDIS_ADDR", &cfg.Redis.Addr)
	readEnvString("REDIS_PASSWORD", &cfg.Redis.Password)
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %q", v)
		}
		cfg.Redis.DB = n
	}
	if err := readEnvDuration("DELIVERY_SNAPSHOT_TTL", &cfg.Redis.SnapshotTTL); err != nil {
		return nil, err
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitAndTrim(v)
	}
	readEnvString("KAFKA_ORDERS_TOPIC", &cfg.Kafka.OrdersTopic)
	readEnvString("KAFKA_GROUP_ID", &cfg.Kafka.GroupID)
	readEnvString("KAFKA_STATUS_TOPIC", &cfg.Kafka.StatusTopic)

	readEnvString("USERS_BASE_URL", &cfg.Users.BaseURL)
	readEnvString("AUTH_SECRET", &cfg.Auth.Secret)
	readEnvString("PPROF_USER", &cfg.Pprof.User)
	readEnvString("PPROF_PASS", &cfg.Pprof.Pass)

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT: %q", v)
		}
		cfg.RateLimit.Limit = n
	}
	if err := readEnvDuration("RATE_LIMIT_WINDOW", &cfg.RateLimit.Window); err != nil {
		return nil, err
	}
	if err := readEnvDuration("DELIVERY_OPERATION_TIMEOUT", &cfg.Delivery.OperationTimeout); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	return cfg, nil
}

func readEnvString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func readEnvDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %q", key, v)
	}
	*dst = d
	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
