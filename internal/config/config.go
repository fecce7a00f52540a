package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env           string        `yaml:"env" env:"ENV" env-default:"local"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"1m"`
	Database      Database      `yaml:"database"`
	HTTPServer    HTTPServer    `yaml:"http_server"`
	Auth          Auth          `yaml:"auth"`
}

type Database struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env-required:"true"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-required:"true"`
	DBName   string `yaml:"dbname" env-default:"cafe"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Auth struct {
	Secret            string        `yaml:"secret" env:"AUTH_SECRET" env-required:"true"`
	TokenTTL          time.Duration `yaml:"token_ttl" env-default:"12h"`
	AdminUser         string        `yaml:"admin_user" env-default:"admin"`
	AdminPasswordHash string        `yaml:"admin_password_hash" env:"ADMIN_PASSWORD_HASH" env-required:"true"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
