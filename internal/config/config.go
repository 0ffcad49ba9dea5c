package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"kisan-backend/internal/llm"
	"kisan-backend/internal/locale"
	"kisan-backend/internal/storage"
)

// Config holds the application's configuration.
type Config struct {
	App struct {
		Env             string `yaml:"env"` // "development" or "production"
		DefaultLanguage string `yaml:"default_language"`
	} `yaml:"app"`
	Server struct {
		Port            string        `yaml:"port"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	// Timeout applies to every outbound provider call.
	ProviderTimeout time.Duration `yaml:"provider_timeout"`

	Chat   llm.Config `yaml:"chat"`
	Vision struct {
		APIKey   string `yaml:"api_key"`
		Endpoint string `yaml:"endpoint"`
	} `yaml:"vision"`
	Speech struct {
		APIKey   string `yaml:"api_key"`
		Endpoint string `yaml:"endpoint"`
	} `yaml:"speech"`
	Mandi struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"mandi"`

	Database struct {
		Driver         string `yaml:"driver"` // "sqlite" or "postgres"
		URL            string `yaml:"url"`
		MigrationsPath string `yaml:"migrations_path"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret string        `yaml:"jwt_secret"`
		TokenTTL  time.Duration `yaml:"token_ttl"`
	} `yaml:"auth"`

	Storage  storage.S3Config `yaml:"storage"`
	Telegram struct {
		Enabled bool   `yaml:"enabled"`
		Token   string `yaml:"token"`
	} `yaml:"telegram"`
}

// LoadConfig reads .env (if any), then the YAML file with ${VAR} references
// expanded, then fills empty fields from the environment and defaults. A
// missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	raw, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	config.applyEnv()
	config.applyDefaults()
	return config, nil
}

func (c *Config) applyEnv() {
	if c.Chat.APIKey == "" {
		switch c.Chat.Provider {
		case llm.ProviderGroq:
			c.Chat.APIKey = os.Getenv("GROQ_API_KEY")
		case llm.ProviderOpenRouter:
			c.Chat.APIKey = os.Getenv("OPENROUTER_API_KEY")
		default:
			c.Chat.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	}
	setFromEnv(&c.Vision.APIKey, "GOOGLE_VISION_API_KEY")
	setFromEnv(&c.Speech.APIKey, "VERTEX_API_KEY")
	setFromEnv(&c.Mandi.APIKey, "MANDI_API_KEY")
	setFromEnv(&c.Database.URL, "DATABASE_URL")
	setFromEnv(&c.Auth.JWTSecret, "JWT_SECRET")
	setFromEnv(&c.Telegram.Token, "TELEGRAM_BOT_TOKEN")
	setFromEnv(&c.Server.Port, "PORT")
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "development"
	}
	if c.App.DefaultLanguage == "" {
		c.App.DefaultLanguage = locale.Default
	}
	if c.Server.Port == "" {
		c.Server.Port = "8000"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.ProviderTimeout == 0 {
		c.ProviderTimeout = 30 * time.Second
	}
	if c.Chat.Provider == "" {
		c.Chat.Provider = llm.ProviderGemini
	}
	if c.Chat.ModelName == "" && c.Chat.Provider == llm.ProviderGemini {
		c.Chat.ModelName = "gemini-1.5-flash"
	}
	if c.Chat.Timeout == 0 {
		c.Chat.Timeout = c.ProviderTimeout
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.URL == "" && c.Database.Driver == "sqlite" {
		c.Database.URL = "./data/kisan.db"
	}
	if c.Database.MigrationsPath == "" {
		c.Database.MigrationsPath = "migrations"
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 30 * 24 * time.Hour
	}
}

func setFromEnv(dst *string, key string) {
	if *dst == "" {
		*dst = os.Getenv(key)
	}
}

// NewLogger builds the zap logger described by the config.
func (c *Config) NewLogger() (*zap.Logger, error) {
	var zcfg zap.Config
	if c.App.Env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	zcfg.Level = level
	return zcfg.Build()
}
