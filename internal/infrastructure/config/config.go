// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Relational backend
	DBDriver    string // "postgres" or "sqlite"
	PostgresDSN string
	SQLitePath  string

	// Document backend
	MongoURI string
	MongoDB  string

	// Upstream services
	FlightAPIBase     string
	FlightAPIFallback string
	PilotAPIBase      string
	CrewAPIBase       string
	PassengerAPIBase  string
	UpstreamTimeout   time.Duration
	UpstreamUser      string
	UpstreamPassword  string

	// Boundary auth, "user:pass" pairs separated by commas
	AdminAccounts  map[string]string
	ReaderAccounts map[string]string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=roster password=roster dbname=rosterdb port=5432"),
		SQLitePath:  getEnv("SQLITE_PATH", "roster_db.sqlite"),

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "rosterdb"),

		FlightAPIBase:     getEnv("FLIGHT_API_BASE", "http://flight-info-api:8081/api/flights"),
		FlightAPIFallback: getEnv("FLIGHT_API_FALLBACK", "http://localhost:8081/api/flights"),
		PilotAPIBase:      getEnv("PILOT_API_BASE", "http://pilot-api:8082/api/pilots"),
		CrewAPIBase:       getEnv("CREW_API_BASE", "http://crew-api:8083/api/cabin-crew"),
		PassengerAPIBase:  getEnv("PASSENGER_API_BASE", "http://passenger-api:8084/api/passengers"),
		UpstreamTimeout:   time.Duration(getEnvAsInt("UPSTREAM_TIMEOUT", 10)) * time.Second,
		UpstreamUser:      getEnv("UPSTREAM_USER", "admin"),
		UpstreamPassword:  getEnv("UPSTREAM_PASSWORD", "password"),

		AdminAccounts:  parseAccounts(getEnv("ADMIN_ACCOUNTS", "admin:password")),
		ReaderAccounts: parseAccounts(getEnv("READER_ACCOUNTS", "pilot_user:pilot123,crew_user:crew123")),
	}

	return config, nil
}

// parseAccounts splits "user:pass,user:pass" into a credential map
func parseAccounts(raw string) map[string]string {
	accounts := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			continue
		}
		accounts[parts[0]] = parts[1]
	}
	return accounts
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
