package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort        string        `envconfig:"HTTP_PORT"         default:"8080"`
	DataAPIURL      string        `envconfig:"DATA_API_URL"      required:"true"`
	DataAPIKey      string        `envconfig:"DATA_API_KEY"      required:"true"`
	RedisAddr       string        `envconfig:"REDIS_ADDR"        default:"localhost:6379"`
	RedisPassword   string        `envconfig:"REDIS_PASSWORD"    default:""`
	ProfileCacheTTL time.Duration `envconfig:"PROFILE_CACHE_TTL" default:"10m"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT"   default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT"  default:"10s"`
	LogLevel        string        `envconfig:"LOG_LEVEL"         default:"info"`
}

func Load(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
