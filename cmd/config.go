package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8080"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"logistics"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`

	// KafkaBrokers is a comma separated list. Publishing is disabled when it is empty.
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"logistics.events"`

	OTelEnabled    bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTelEndpoint   string `envconfig:"OTEL_ENDPOINT" default:"http://localhost:4318/v1/traces"`
	ServiceName    string `envconfig:"SERVICE_NAME" default:"logistics"`
	ServiceVersion string `envconfig:"SERVICE_VERSION" default:"dev"`

	RouteStatsSchedule string `envconfig:"ROUTE_STATS_SCHEDULE" default:"0 */5 * * * *"`
}

// LoadConfig reads the environment, after loading .env from the working directory if
// one exists. Variables already set take precedence over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) KafkaEnabled() bool {
	for _, broker := range c.KafkaBrokers {
		if strings.TrimSpace(broker) != "" {
			return true
		}
	}
	return false
}
