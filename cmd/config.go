package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at start-up and handed to the composition root.
type Config struct {
	HTTPPort string

	// DBDriver is "postgres" or "sqlite".
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string

	JWTSecret string
	JWTExpiry time.Duration

	// AMQPURL is empty when event publishing is disabled.
	AMQPURL      string
	AMQPExchange string

	SeedCatalog bool

	OrderProgressEnabled  bool
	OrderProgressSchedule string
	OrderProgressAge      time.Duration
}

// PostgresDSN builds the connection string for gorm.io/driver/postgres.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads the environment after merging an optional .env file. Variables already
// set in the environment win over the file.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", file, err)
			}
		}
	}

	jwtExpiry, err := durationVar("JWT_EXPIRY", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}
	progressAge, err := durationVar("ORDER_PROGRESS_AGE", time.Minute)
	if err != nil {
		return Config{}, err
	}
	seed, err := boolVar("SEED_CATALOG", false)
	if err != nil {
		return Config{}, err
	}
	progressEnabled, err := boolVar("ORDER_PROGRESS_ENABLED", false)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		HTTPPort:              stringVar("HTTP_PORT", "8080"),
		DBDriver:              stringVar("DB_DRIVER", "postgres"),
		DBHost:                stringVar("DB_HOST", "localhost"),
		DBPort:                stringVar("DB_PORT", "5432"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                stringVar("DB_NAME", "wiggy"),
		DBSslMode:             stringVar("DB_SSLMODE", "disable"),
		SQLitePath:            stringVar("SQLITE_PATH", "wiggy.db"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		JWTExpiry:             jwtExpiry,
		AMQPURL:               os.Getenv("AMQP_URL"),
		AMQPExchange:          stringVar("AMQP_EXCHANGE", "orders_topic"),
		SeedCatalog:           seed,
		OrderProgressEnabled:  progressEnabled,
		OrderProgressSchedule: os.Getenv("ORDER_PROGRESS_SCHEDULE"),
		OrderProgressAge:      progressAge,
	}

	if config.DBDriver != "postgres" && config.DBDriver != "sqlite" {
		return Config{}, fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", config.DBDriver)
	}
	if config.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

func stringVar(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationVar(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func boolVar(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
