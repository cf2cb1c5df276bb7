package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	APIKey      string // API key for authentication

	// TrustedProxies are source addresses whose X-Forwarded-For is believed
	TrustedProxies []string

	// Database pool tuning
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Hunting content files
	GroupsPath   string
	MonstersPath string

	// Event pipeline
	DeadLetterPath  string
	EventMaxRetries int
	EventRetryDelay time.Duration

	// Chat command script
	CommandScriptPath string

	// Event log retention
	EventRetentionDays int

	// Discord notifications (optional; log-only notifier when unset)
	DiscordToken     string
	DiscordChannelID string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		LogDir:             getEnv("LOG_DIR", "logs"),
		ServiceName:        getEnv("SERVICE_NAME", "idlehunt"),
		Version:            getEnv("VERSION", "dev"),
		Environment:        getEnv("ENVIRONMENT", "dev"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", "postgres"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBName:             getEnv("DB_NAME", "idlehunt"),
		APIKey:             getEnv("API_KEY", ""),
		TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES"),
		DBMaxConns:         getEnvAsInt("DB_MAX_CONNS", 20),
		DBMaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
		GroupsPath:         getEnv("HUNT_GROUPS_PATH", ConfigPathHuntGroups),
		MonstersPath:       getEnv("HUNT_MONSTERS_PATH", ConfigPathHuntMonsters),
		DeadLetterPath:     getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
		EventMaxRetries:    getEnvAsInt("EVENT_MAX_RETRIES", 5),
		EventRetryDelay:    getEnvAsDuration("EVENT_RETRY_DELAY", 2*time.Second),
		CommandScriptPath:  getEnv("HUNT_COMMAND_SCRIPT", ConfigPathHuntCommands),
		EventRetentionDays: getEnvAsInt("EVENT_RETENTION_DAYS", DefaultEventRetentionDays),
		DiscordToken:       getEnv("DISCORD_TOKEN", ""),
		DiscordChannelID:   getEnv("DISCORD_CHANNEL_ID", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back to the
// default on missing or unparseable values
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsSlice retrieves a comma-separated environment variable as a slice,
// dropping empty entries
func getEnvAsSlice(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration retrieves a duration environment variable (Go duration
// syntax, e.g. "5m"), falling back to the default on missing or unparseable
// values
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
