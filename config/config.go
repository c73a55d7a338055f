package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Mongo database names. The hospital knowledge base and the appointments live in
	// one database, the pharmacy inventory in another.
	HospitalDBName string `mapstructure:"HOSPITAL_DB_NAME"`
	PharmacyDBName string `mapstructure:"PHARMACY_DB_NAME"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Session store. Backend is "memory" or "redis".
	SessionBackend    string `mapstructure:"SESSION_BACKEND"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`
	SessionCapacity   int    `mapstructure:"SESSION_CAPACITY"`

	// Answer providers. Backend is "openai" or "gemini".
	AIBackend            string `mapstructure:"AI_BACKEND"`
	OpenAIAPIKey         string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL        string `mapstructure:"OPENAI_BASE_URL"`
	OpenAIChatModel      string `mapstructure:"OPENAI_CHAT_MODEL"`
	OpenAIEmbeddingModel string `mapstructure:"OPENAI_EMBEDDING_MODEL"`
	GeminiAPIKey         string `mapstructure:"GEMINI_API_KEY"`
	ProviderTimeoutSec   int    `mapstructure:"PROVIDER_TIMEOUT_SEC"`

	// CORS allowed origins, comma separated in env form.
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "5002")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("HOSPITAL_DB_NAME", "rag_db")
	viper.SetDefault("PHARMACY_DB_NAME", "pharmacy")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("SESSION_BACKEND", "memory")
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("SESSION_CAPACITY", 1000)
	viper.SetDefault("AI_BACKEND", "openai")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("OPENAI_CHAT_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small")
	viper.SetDefault("PROVIDER_TIMEOUT_SEC", 30)
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5002"})

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
