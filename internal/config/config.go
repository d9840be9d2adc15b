package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Backend struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"backend"`
	Auth struct {
		// EchoOTPCode forwards the one-time code into the verification
		// page URL. Testing convenience only, keep off outside dev.
		EchoOTPCode bool `yaml:"echo_otp_code"`
	} `yaml:"auth"`
	Locale struct {
		Default string `yaml:"default"`
	} `yaml:"locale"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	if v := os.Getenv("BACKEND_BASE_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if cfg.Backend.TimeoutSeconds <= 0 {
		cfg.Backend.TimeoutSeconds = 30
	}
	if cfg.Locale.Default == "" {
		cfg.Locale.Default = "fa"
	}
	return cfg
}
