package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	JWT        JWTConfig        `yaml:"jwt"`
	Drive      DriveConfig      `yaml:"drive"`
	Billing    BillingConfig    `yaml:"billing"`
	Pagination PaginationConfig `yaml:"pagination"`
	Log        LogConfig        `yaml:"log"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type DatabaseConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	Charset      string `yaml:"charset"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret      string `yaml:"secret"`
	ExpireHours int    `yaml:"expire_hours"`
}

type DriveConfig struct {
	// MaxDepth is the recursion ceiling for the folder walker. Shared drives
	// can make a folder its own descendant, so the walker bounds depth instead
	// of detecting cycles.
	MaxDepth int `yaml:"max_depth"`
	// StructureCacheTTL is how long a cached folder tree stays valid, in seconds.
	StructureCacheTTL int `yaml:"structure_cache_ttl"`
	// TokenTTL is the fallback lifetime for stored Google access tokens when
	// the login payload carries no expiry, in seconds.
	TokenTTL int `yaml:"token_ttl"`
}

type BillingConfig struct {
	PixExpireHours int `yaml:"pix_expire_hours"`
	// SweepInterval controls the subscription expiry sweep, in seconds.
	SweepInterval int `yaml:"sweep_interval"`
}

type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

var AppConfig *Config

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	AppConfig = &cfg
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3333
	}
	if cfg.JWT.ExpireHours == 0 {
		cfg.JWT.ExpireHours = 72
	}
	if cfg.Drive.MaxDepth == 0 {
		cfg.Drive.MaxDepth = 3
	}
	if cfg.Drive.StructureCacheTTL == 0 {
		cfg.Drive.StructureCacheTTL = 1800
	}
	if cfg.Drive.TokenTTL == 0 {
		cfg.Drive.TokenTTL = 3600
	}
	if cfg.Billing.PixExpireHours == 0 {
		cfg.Billing.PixExpireHours = 24
	}
	if cfg.Billing.SweepInterval == 0 {
		cfg.Billing.SweepInterval = 3600
	}
	if cfg.Pagination.DefaultPageSize == 0 {
		cfg.Pagination.DefaultPageSize = 20
	}
	if cfg.Pagination.MaxPageSize == 0 {
		cfg.Pagination.MaxPageSize = 100
	}
}
