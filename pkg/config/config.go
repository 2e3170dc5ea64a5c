package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini   = "gemini"
	ProviderGigaChat = "gigachat"

	StoreSupabase = "supabase"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreNone     = "none"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	LLM       LLMConfig
	Gemini    GeminiConfig
	GigaChat  GigaChatConfig
	Store     StoreConfig
	Supabase  SupabaseConfig
	SQLite    SQLiteConfig
	Portfolio PortfolioConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port             string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type LLMConfig struct {
	Provider string
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	Model              string
	InsecureSkipVerify bool
}

// StoreConfig selects where unanswered questions are recorded.
type StoreConfig struct {
	Backend string
	Table   string
	Timeout time.Duration
}

type SupabaseConfig struct {
	URL string
	Key string
}

type SQLiteConfig struct {
	Path string
}

type PortfolioConfig struct {
	File string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work for containers and lambdas
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "60"))
	storeTimeout, _ := strconv.Atoi(getEnv("LOG_STORE_TIMEOUT", "3"))
	temperature, err := strconv.ParseFloat(getEnv("GEMINI_TEMPERATURE", "0.7"), 32)
	if err != nil {
		temperature = 0.7
	}

	return &Config{
		Server: ServerConfig{
			Port:             getEnv("SERVER_PORT", "8080"),
			ReadTimeout:      time.Duration(readTimeout) * time.Second,
			WriteTimeout:     time.Duration(writeTimeout) * time.Second,
			CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "portfolio_chat"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		LLM: LLMConfig{
			Provider: strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature: float32(temperature),
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			Model:              getEnv("GIGACHAT_MODEL", "GigaChat"),
			InsecureSkipVerify: getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "false") == "true",
		},
		Store: StoreConfig{
			Backend: strings.ToLower(getEnv("LOG_STORE", StoreSupabase)),
			Table:   getEnv("UNANSWERED_TABLE", "ai_learning_logs"),
			Timeout: time.Duration(storeTimeout) * time.Second,
		},
		Supabase: SupabaseConfig{
			URL: getEnv("SUPABASE_URL", getEnv("VITE_SUPABASE_URL", "")),
			Key: getEnv("SUPABASE_ANON_KEY", getEnv("VITE_SUPABASE_ANON_KEY", "")),
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_PATH", "portfolio-chat.db"),
		},
		Portfolio: PortfolioConfig{
			File: getEnv("PORTFOLIO_FILE", ""),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

// ModelConfigured reports whether the selected provider has a credential.
func (c *Config) ModelConfigured() bool {
	switch c.LLM.Provider {
	case ProviderGigaChat:
		return c.GigaChat.APIKey != ""
	default:
		return c.Gemini.APIKey != ""
	}
}

// StoreConfigured reports whether unanswered questions have somewhere to go.
// Postgres and SQLite are opt-in, so selecting them counts as configuration.
func (c *Config) StoreConfigured() bool {
	switch c.Store.Backend {
	case StoreSupabase:
		return c.Supabase.URL != "" && c.Supabase.Key != ""
	case StorePostgres:
		return c.Database.Host != ""
	case StoreSQLite:
		return c.SQLite.Path != ""
	default:
		return false
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
