package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type AuthConfig struct {
	AccessSecret string
}

type ClassifierConfig struct {
	APIKey      string
	Model       string
	VisionModel string
	Timeout     time.Duration
	MockMode    bool
}

type TablesConfig struct {
	Leads            string
	HistoricalPrices string
	Profiles         string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	Auth        AuthConfig
	Classifier  ClassifierConfig
	Tables      TablesConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Classifier: ClassifierConfig{
			APIKey:      v.GetString("GEMINI_API_KEY"),
			Model:       v.GetString("GEMINI_MODEL"),
			VisionModel: v.GetString("GEMINI_VISION_MODEL"),
			Timeout:     v.GetDuration("CLASSIFIER_TIMEOUT"),
			MockMode:    v.GetBool("CLASSIFIER_MOCK"),
		},
		Tables: TablesConfig{
			Leads:            v.GetString("LEADS_TABLE"),
			HistoricalPrices: v.GetString("HISTORICAL_PRICES_TABLE"),
			Profiles:         v.GetString("PROFILES_TABLE"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Classifier.Model == "" {
		cfg.Classifier.Model = "gemini-pro"
	}
	if cfg.Classifier.VisionModel == "" {
		cfg.Classifier.VisionModel = "gemini-1.5-pro"
	}
	if cfg.Classifier.Timeout == 0 {
		cfg.Classifier.Timeout = 10 * time.Second
	}
	if cfg.Tables.Leads == "" {
		cfg.Tables.Leads = "leads"
	}
	if cfg.Tables.HistoricalPrices == "" {
		cfg.Tables.HistoricalPrices = "historical_prices"
	}
	if cfg.Tables.Profiles == "" {
		cfg.Tables.Profiles = "profiles"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if !cfg.Classifier.MockMode && cfg.Classifier.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required unless CLASSIFIER_MOCK is enabled")
	}
	return nil
}
