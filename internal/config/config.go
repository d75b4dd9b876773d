package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds environment-based settings. A local .env file is loaded
// first when present; real environments set the variables directly.
type Config struct {
	Environment   string `env:"APP_ENV" envDefault:"development"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:":8080"`

	DatabaseURL    string `env:"DATABASE_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"./migrations"`

	JWTSecret string `env:"JWT_SECRET,required"`

	RedisAddress  string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	RedisUsername string `env:"REDIS_USERNAME"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	MQTTBrokerURL string `env:"MQTT_BROKER_URL" envDefault:"tcp://localhost:1883"`

	UseSpaces       bool   `env:"USE_SPACES"`
	SpacesEndpoint  string `env:"SPACES_ENDPOINT"`
	SpacesRegion    string `env:"SPACES_REGION"`
	SpacesBucket    string `env:"SPACES_BUCKET"`
	SpacesCDNURL    string `env:"SPACES_CDN_URL"`
	SpacesAccessKey string `env:"SPACES_ACCESS_KEY"`
	SpacesSecretKey string `env:"SPACES_SECRET_KEY"`
}

// Load reads .env (if any) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
