package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"safewatch/internal/infrastructure/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultEnv             = EnvLocal
	defaultLogLevel        = "info"
	defaultConfigDir       = ".safewatch"
	defaultDriver          = storage.DriverSQLite
	defaultDataFile        = "safewatch.db"
	defaultMigrationsPath  = "migrations"
	defaultRedisAddr       = "localhost:6379"
	defaultRedisPrefix     = "safewatch:"
	defaultRunAddress      = "localhost:8080"
	defaultRateLimitRPS    = 10.0
	defaultRateLimitBurst  = 20
	defaultRefreshInterval = 30
)

type Config struct {
	Env             string `mapstructure:"app_env"`
	LogLevel        string `mapstructure:"log_level"`
	ConfigDir       string `mapstructure:"config_dir"`
	RefreshInterval int    `mapstructure:"refresh_interval_seconds"`
	Storage         Storage
	Server          Server
	Telegram        Telegram
}

type Storage struct {
	Driver         string `mapstructure:"storage_driver"`
	DataPath       string `mapstructure:"data_path"`
	DatabaseURI    string `mapstructure:"database_uri"`
	MigrationsPath string `mapstructure:"migrations_path"`
	RedisAddr      string `mapstructure:"redis_addr"`
	RedisPassword  string `mapstructure:"redis_password"`
	RedisDB        int    `mapstructure:"redis_db"`
	RedisPrefix    string `mapstructure:"redis_prefix"`
}

type Server struct {
	RunAddress     string  `mapstructure:"run_address"`
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

type Telegram struct {
	Token  string `mapstructure:"telegram_token"`
	ChatID int64  `mapstructure:"telegram_chat_id"`
}

// Enabled сообщает, настроены ли уведомления в Telegram
func (t Telegram) Enabled() bool {
	return t.Token != "" && t.ChatID != 0
}

// Load собирает конфигурацию из .env, переменных окружения и файла,
// уже прочитанного в viper
func Load() (*Config, error) {
	// Загружаем .env файл если существует
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	viper.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("REFRESH_INTERVAL_SECONDS", defaultRefreshInterval)
	viper.SetDefault("STORAGE_DRIVER", defaultDriver)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	viper.SetDefault("REDIS_ADDR", defaultRedisAddr)
	viper.SetDefault("REDIS_PREFIX", defaultRedisPrefix)
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("RATE_LIMIT_RPS", defaultRateLimitRPS)
	viper.SetDefault("RATE_LIMIT_BURST", defaultRateLimitBurst)

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("ошибка создания директории конфигурации: %w", err)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, defaultDataFile)
	}

	cfg := &Config{
		Env:             viper.GetString("APP_ENV"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
		ConfigDir:       configDir,
		RefreshInterval: viper.GetInt("REFRESH_INTERVAL_SECONDS"),
		Storage: Storage{
			Driver:         strings.ToLower(viper.GetString("STORAGE_DRIVER")),
			DataPath:       dataPath,
			DatabaseURI:    viper.GetString("DATABASE_URI"),
			MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
			RedisAddr:      viper.GetString("REDIS_ADDR"),
			RedisPassword:  viper.GetString("REDIS_PASSWORD"),
			RedisDB:        viper.GetInt("REDIS_DB"),
			RedisPrefix:    viper.GetString("REDIS_PREFIX"),
		},
		Server: Server{
			RunAddress:     viper.GetString("RUN_ADDRESS"),
			RateLimitRPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst: viper.GetInt("RATE_LIMIT_BURST"),
		},
		Telegram: Telegram{
			Token:  viper.GetString("TELEGRAM_TOKEN"),
			ChatID: viper.GetInt64("TELEGRAM_CHAT_ID"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case storage.DriverMemory, storage.DriverSQLite:
	case storage.DriverRedis:
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("redis_addr не может быть пустым")
		}
	case storage.DriverPostgres:
		if c.Storage.DatabaseURI == "" {
			return fmt.Errorf("database_uri не может быть пустым для драйвера postgres")
		}
	default:
		return fmt.Errorf("%w: %s", storage.ErrUnknownDriver, c.Storage.Driver)
	}

	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval_seconds должен быть положительным")
	}
	if c.Server.RateLimitRPS <= 0 || c.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("rate_limit_rps и rate_limit_burst должны быть положительными")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}
