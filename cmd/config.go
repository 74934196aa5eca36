package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST"     default:"localhost"`
	DBPort     string `envconfig:"DB_PORT"     default:"5432"`
	DBUser     string `envconfig:"DB_USER"     default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME"     default:"marketplace"`
	DBSslMode  string `envconfig:"DB_SSLMODE"  default:"disable"`

	KafkaBrokers           string `envconfig:"KAFKA_BROKERS"             default:"localhost:9092"`
	KafkaOrderChangedTopic string `envconfig:"KAFKA_ORDER_CHANGED_TOPIC" default:"order.status_changed"`

	OutboxBatchSize     int    `envconfig:"OUTBOX_BATCH_SIZE"     default:"100"`
	OutboxRelaySchedule string `envconfig:"OUTBOX_RELAY_SCHEDULE" default:"*/2 * * * * *"`

	DeliveryEstimate  time.Duration `envconfig:"DELIVERY_ESTIMATE"   default:"45m"`
	ClaimablePageSize int           `envconfig:"CLAIMABLE_PAGE_SIZE" default:"20"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads .env when present, then the process environment.
// Variables already set in the environment win over .env.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
