package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	State     StateConfig `mapstructure:"state"`
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	AI        AIConfig
	Pomodoro  PomodoroConfig  `mapstructure:"pomodoro"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// StateConfig 用户状态存储配置，backend 取 redis / database / memory
type StateConfig struct {
	Backend string `mapstructure:"backend"`
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// AIConfig 生成式模型配置。Model 为首选模型，FallbackModel 为失败后唯一一次重试的备用模型
type AIConfig struct {
	BaseURL       string `mapstructure:"base_url"`
	APIKey        string `mapstructure:"api_key"`
	Model         string `mapstructure:"model"`
	FallbackModel string `mapstructure:"fallback_model"`
	MaxTokens     int    `mapstructure:"max_tokens"`
}

// CredentialsPresent 判断是否配置了真实凭证。占位符视为未配置，走演示模式
func (c AIConfig) CredentialsPresent() bool {
	key := strings.TrimSpace(c.APIKey)
	return key != "" && key != "your_gemini_api_key_here"
}

type PomodoroConfig struct {
	WorkMinutes  int `mapstructure:"work_minutes"`
	BreakMinutes int `mapstructure:"break_minutes"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("STUDY_BUDDY")
	v.AutomaticEnv()

	// Server
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// State store
	v.BindEnv("state.backend", "STATE_BACKEND")

	// Database
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// AI
	v.BindEnv("ai.base_url", "AI_BASE_URL")
	v.BindEnv("ai.api_key", "GEMINI_API_KEY")
	v.BindEnv("ai.model", "GEMINI_MODEL")
	v.BindEnv("ai.fallback_model", "GEMINI_FALLBACK_MODEL")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("state.backend", "memory")
	v.SetDefault("ai.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.fallback_model", "gemini-flash-latest")
	v.SetDefault("ai.max_tokens", 500)
	v.SetDefault("pomodoro.work_minutes", 25)
	v.SetDefault("pomodoro.break_minutes", 5)
	v.SetDefault("rate_limit.max_requests", 300)
	v.SetDefault("rate_limit.window_minutes", 1)

	if err := v.ReadInConfig(); err != nil {
		// 没有配置文件也可以跑（纯环境变量 + 默认值 + memory 后端）
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// 生产环境校验 JWT Secret 强度
	if cfg.Server.Mode == "release" && cfg.JWT.Secret != "" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	switch cfg.State.Backend {
	case "redis", "database", "memory":
	default:
		return nil, fmt.Errorf("unknown state backend %q (want redis, database or memory)", cfg.State.Backend)
	}

	return &cfg, nil
}
