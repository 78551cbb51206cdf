package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	AIProviderOpenAI = "openai"
	AIProviderGemini = "gemini"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig
	Security SecurityConfig
	Chat     ChatConfig
	Contact  ContactConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	SeedDatabase    bool
}

type AIConfig struct {
	Provider    string
	APIKey      string
	Endpoint    string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration

	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	BodyLimit          string
}

type ChatConfig struct {
	HistoryWindow        int
	PricingContextWindow int
	MaxMessageLength     int
}

// ContactConfig limits repeated demo requests from one email address
type ContactConfig struct {
	DuplicateWindow   time.Duration
	MaxLeadsPerWindow int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 45*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "avoqado"),
			Password:        getEnv("DB_PASSWORD", "avoqado"),
			Name:            getEnv("DB_NAME", "avoqado_web"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "avoqado.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
		},
		AI: AIConfig{
			Provider:            strings.ToLower(getEnv("AI_PROVIDER", AIProviderOpenAI)),
			APIKey:              getEnv("AI_API_KEY", os.Getenv("OPENAI_API_KEY")),
			Endpoint:            getEnv("AI_ENDPOINT", "https://api.openai.com/v1/chat/completions"),
			BaseURL:             getEnv("AI_BASE_URL", ""),
			Model:               getEnv("AI_MODEL", ""),
			MaxTokens:           getIntEnv("AI_MAX_TOKENS", 200),
			Temperature:         getFloatEnv("AI_TEMPERATURE", 0.7),
			Timeout:             getDurationEnv("AI_TIMEOUT", 30*time.Second),
			BreakerMaxFailures:  getIntEnv("AI_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout: getDurationEnv("AI_BREAKER_RESET_TIMEOUT", 30*time.Second),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			BodyLimit:          getEnv("BODY_LIMIT", "64K"),
		},
		Chat: ChatConfig{
			HistoryWindow:        getIntEnv("CHAT_HISTORY_WINDOW", 6),
			PricingContextWindow: getIntEnv("CHAT_PRICING_CONTEXT_WINDOW", 4),
			MaxMessageLength:     getIntEnv("CHAT_MAX_MESSAGE_LENGTH", 1000),
		},
		Contact: ContactConfig{
			DuplicateWindow:   getDurationEnv("CONTACT_DUPLICATE_WINDOW", time.Hour),
			MaxLeadsPerWindow: getIntEnv("CONTACT_MAX_LEADS_PER_WINDOW", 3),
		},
	}

	if config.AI.Model == "" {
		config.AI.Model = config.AI.DefaultModel()
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if err := config.Validate(); err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	return config
}

// Validate checks settings that have a closed set of values
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	switch c.AI.Provider {
	case AIProviderOpenAI, AIProviderGemini:
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q", c.AI.Provider)
	}

	if c.Chat.HistoryWindow < 0 || c.Chat.PricingContextWindow < 0 {
		return fmt.Errorf("chat windows must not be negative")
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// DefaultModel returns the completion model used when AI_MODEL is unset
func (c *AIConfig) DefaultModel() string {
	if c.Provider == AIProviderGemini {
		return "gemini-2.0-flash"
	}
	return "gpt-4o-mini"
}

// Enabled reports whether an AI provider can be called
func (c *AIConfig) Enabled() bool {
	return c.APIKey != ""
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
