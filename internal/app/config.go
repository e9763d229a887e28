package app

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bloomlms/bloom-backend/internal/db"
	"github.com/bloomlms/bloom-backend/internal/pkg/logger"
	"github.com/bloomlms/bloom-backend/internal/utils"
)

type Config struct {
	Port           string
	LogMode        string
	Environment    string
	AllowedOrigins []string
	DB             db.Config
}

// fileConfig mirrors the optional YAML overlay. Any field left empty in the
// file keeps the value already resolved from the environment.
type fileConfig struct {
	Port           string   `yaml:"port"`
	Environment    string   `yaml:"environment"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	DB             struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"db"`
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:        utils.GetEnv("PORT", "8000", log),
		LogMode:     utils.GetEnv("LOG_MODE", "development", log),
		Environment: utils.GetEnv("ENVIRONMENT", "development", log),
		AllowedOrigins: splitOrigins(
			utils.GetEnv("ALLOWED_ORIGINS", "http://localhost:3000", log),
		),
		DB: db.Config{
			Host:     utils.GetEnv("DB_HOST", "localhost", log),
			Port:     utils.GetEnv("DB_PORT", "5432", log),
			User:     utils.GetEnv("DB_USER", "postgres", log),
			Password: utils.GetEnv("DB_PASSWORD", "postgres", log),
			Name:     utils.GetEnv("DB_NAME", "bloom", log),
		},
	}

	if path := utils.GetEnv("CONFIG_FILE", "", log); path != "" {
		applyConfigFile(&cfg, path, log)
	}
	return cfg
}

func applyConfigFile(cfg *Config, path string, log *logger.Logger) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn("Could not read config file, keeping environment values", "path", path, "error", err)
		return
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		log.Warn("Could not parse config file, keeping environment values", "path", path, "error", err)
		return
	}
	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.Environment != "" {
		cfg.Environment = fc.Environment
	}
	if len(fc.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = fc.AllowedOrigins
	}
	if fc.DB.Host != "" {
		cfg.DB.Host = fc.DB.Host
	}
	if fc.DB.Port != "" {
		cfg.DB.Port = fc.DB.Port
	}
	if fc.DB.User != "" {
		cfg.DB.User = fc.DB.User
	}
	if fc.DB.Password != "" {
		cfg.DB.Password = fc.DB.Password
	}
	if fc.DB.Name != "" {
		cfg.DB.Name = fc.DB.Name
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
