package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	AI       AIConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogLevel    string
}

func (c AppConfig) IsDevelopment() bool {
	switch strings.ToLower(c.Environment) {
	case "dev", "development", "local":
		return true
	}
	return false
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

// Enabled reports whether a Postgres host is configured. Without one the server
// runs on the in-memory store.
func (c DatabaseConfig) Enabled() bool {
	return c.DBHost != ""
}

type JWTConfig struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type AIConfig struct {
	Provider     string
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string
	Timeout      time.Duration
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// Load reads the process environment. A non-empty envFile is loaded first when it
// exists; variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	var missing []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, key)
		}
		return s
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg := Config{}
	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		LogLevel:    opt("LOG_LEVEL"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:                opt("DB_HOST"),
		DBPort:                opt("DB_PORT"),
		DBName:                opt("DB_NAME"),
		DBUser:                opt("DB_USER"),
		DBPassword:            v.GetString("DB_PASSWORD"),
		DBSSLMode:             opt("DB_SSL_MODE"),
		ConnectTimeout:        v.GetDuration("DB_CONNECT_TIMEOUT"),
		PoolMaxConns:          v.GetInt32("DB_POOL_MAX_CONNS"),
		PoolMinConns:          v.GetInt32("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime:   v.GetDuration("DB_POOL_MAX_CONN_LIFETIME"),
		PoolMaxConnIdleTime:   v.GetDuration("DB_POOL_MAX_CONN_IDLE_TIME"),
		PoolHealthCheckPeriod: v.GetDuration("DB_POOL_HEALTH_CHECK_PERIOD"),
	}

	cfg.JWT = JWTConfig{
		Secret:   req("JWT_SECRET"),
		Issuer:   opt("JWT_ISSUER"),
		TokenTTL: v.GetDuration("JWT_TOKEN_TTL"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
		TTL:      time.Duration(v.GetInt("REDIS_TTL")) * time.Second,
	}

	cfg.AI = AIConfig{
		Provider:     strings.ToLower(opt("AI_PROVIDER")),
		OpenAIAPIKey: opt("OPENAI_API_KEY"),
		OpenAIModel:  opt("OPENAI_MODEL"),
		GeminiAPIKey: opt("GEMINI_API_KEY"),
		GeminiModel:  opt("GEMINI_MODEL"),
		Timeout:      v.GetDuration("AI_TIMEOUT"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	v.SetDefault("JWT_ISSUER", "talentx")
	v.SetDefault("JWT_TOKEN_TTL", "24h")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_TTL", 600)
	v.SetDefault("AI_TIMEOUT", "30s")
}

func (c Config) validate() error {
	var problems []string
	switch c.AI.Provider {
	case "":
	case ProviderOpenAI:
		if c.AI.OpenAIAPIKey == "" {
			problems = append(problems, "OPENAI_API_KEY is required when AI_PROVIDER=openai")
		}
	case ProviderGemini:
		if c.AI.GeminiAPIKey == "" {
			problems = append(problems, "GEMINI_API_KEY is required when AI_PROVIDER=gemini")
		}
	default:
		problems = append(problems, fmt.Sprintf("AI_PROVIDER must be %q or %q", ProviderOpenAI, ProviderGemini))
	}
	if c.AI.Timeout <= 0 {
		problems = append(problems, "AI_TIMEOUT must be positive")
	}
	if c.Redis.TTL <= 0 {
		problems = append(problems, "REDIS_TTL must be a positive number of seconds")
	}
	if c.JWT.TokenTTL <= 0 {
		problems = append(problems, "JWT_TOKEN_TTL must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(problems, "; "))
	}
	return nil
}
