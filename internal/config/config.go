package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Services   ServicesConfig
	Twilio     TwilioConfig
	Automation AutomationConfig
	Server     ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
	OpenAIAPIKey       string
	GoogleAIAPIKey     string
	PlannerBackend     string // "openai" or "googleai"
	WebAppURI          string
}

// TwilioConfig holds outbound telephony credentials. Validated as a block so
// a misconfigured deployment reports every missing key at once.
type TwilioConfig struct {
	AccountSID      string
	AuthToken       string
	FromNumber      string
	VoiceWebhookURL string
}

// AutomationConfig holds tunables for the campaign automation pipeline
type AutomationConfig struct {
	CollaboratorTimeout time.Duration // per external call
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Services configuration
	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.Services.OpenAIAPIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}
	cfg.Services.GoogleAIAPIKey = os.Getenv("GOOGLE_AI_API_KEY")
	cfg.Services.PlannerBackend = getEnvWithDefault("PLANNER_BACKEND", "openai")
	if cfg.Services.PlannerBackend == "googleai" && cfg.Services.GoogleAIAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_AI_API_KEY is required when PLANNER_BACKEND=googleai: %w",
			ErrEmptyEnvironmentVariable)
	}

	// Twilio configuration: collect every missing key before failing
	cfg.Twilio = TwilioConfig{
		AccountSID:      os.Getenv("TWILIO_ACCOUNT_SID"),
		AuthToken:       os.Getenv("TWILIO_AUTH_TOKEN"),
		FromNumber:      os.Getenv("TWILIO_FROM_NUMBER"),
		VoiceWebhookURL: os.Getenv("TWILIO_VOICE_WEBHOOK_URL"),
	}
	if err := cfg.Twilio.Validate(); err != nil {
		return nil, err
	}

	// Automation configuration
	timeoutSeconds := getEnvWithDefault("AUTOMATION_CALL_TIMEOUT_SECONDS", "30")
	seconds, err := strconv.Atoi(timeoutSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to parse AUTOMATION_CALL_TIMEOUT_SECONDS: %w", err)
	}
	cfg.Automation.CollaboratorTimeout = time.Duration(seconds) * time.Second

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// Validate reports all missing Twilio keys in a single error.
func (c *TwilioConfig) Validate() error {
	var missing []string
	if c.AccountSID == "" {
		missing = append(missing, "TWILIO_ACCOUNT_SID")
	}
	if c.AuthToken == "" {
		missing = append(missing, "TWILIO_AUTH_TOKEN")
	}
	if c.FromNumber == "" {
		missing = append(missing, "TWILIO_FROM_NUMBER")
	}
	if c.VoiceWebhookURL == "" {
		missing = append(missing, "TWILIO_VOICE_WEBHOOK_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing Twilio configuration: %s: %w",
			strings.Join(missing, ", "), ErrEmptyEnvironmentVariable)
	}
	return nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
