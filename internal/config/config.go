package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
		// BaseURL is the public address used in verification links.
		BaseURL string `yaml:"base_url"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		// TTL is the session token lifetime in minutes.
		TTL int `yaml:"ttl"`
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage struct {
		Type       string `yaml:"type"`       // local or s3
		BasePath   string `yaml:"base_path"`  // for local storage
		BaseURL    string `yaml:"base_url"`   // public URL base
		Bucket     string `yaml:"bucket"`     // for S3
		Region     string `yaml:"region"`     // for S3
		AccessKey  string `yaml:"access_key"` // for S3
		SecretKey  string `yaml:"secret_key"` // for S3
		Endpoint   string `yaml:"endpoint"`   // for S3-compatible stores
		PublicRead bool   `yaml:"public_read"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64 `yaml:"max_size"`      // max avatar upload in bytes
		AvatarSize   int   `yaml:"avatar_size"`   // square dimension in px
		ImageQuality int   `yaml:"image_quality"` // JPEG quality (1-100)
	} `yaml:"upload"`
}

// Load reads configuration once at startup and returns an immutable value.
// When DATABASE_URL is set, environment variables win over the YAML file;
// this is the path integration tests and containers use.
func Load() (*Config, error) {
	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL = 60
		applyDefaults(&cfg)
		return &cfg, nil
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("open config file %s: %w", configPath, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./public"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/public"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if cfg.Upload.AvatarSize == 0 {
		cfg.Upload.AvatarSize = 250
	}
	if cfg.Upload.ImageQuality == 0 {
		cfg.Upload.ImageQuality = 80
	}
}
