package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// insecureDefaultJWTSecret is the fallback signing key used when no secret is
// configured. It exists for compatibility with dev setups that never set one;
// any deployment reachable from the network must configure JWT_SECRET.
const insecureDefaultJWTSecret = "pilotbot-insecure-default-secret"

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
}

type BcryptConfig struct {
	Cost int `yaml:"cost"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Bcrypt   BcryptConfig   `yaml:"bcrypt"`
}

type Config struct {
	Port       string
	GinMode    string
	DSN        string
	JWTSecret  string
	JWTIssuer  string
	BcryptCost int
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml when present and applies environment overrides.
// A missing config file is not an error; everything has an env fallback.
func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		configFile = &ConfigFile{}
	}

	port := configFile.App.Port
	if port == 0 {
		port = 3000
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		port = p
	}

	secret := env("JWT_SECRET", configFile.JWT.Secret)
	if secret == "" {
		secret = insecureDefaultJWTSecret
	}

	cost := configFile.Bcrypt.Cost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST %q: %w", v, err)
		}
		cost = c
	}

	return &Config{
		Port:       fmt.Sprintf("%d", port),
		GinMode:    env("GIN_MODE", configFile.App.GinMode),
		DSN:        env("DATABASE_DSN", configFile.Database.DSN),
		JWTSecret:  secret,
		JWTIssuer:  env("JWT_ISSUER", orDefault(configFile.JWT.Issuer, "pilotbot-api")),
		BcryptCost: cost,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
