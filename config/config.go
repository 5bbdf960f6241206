package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/nearbyfyi/ner/internal"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

const (
	EnvPrefix             = "NER"
	DefaultPort           = 8000
	DefaultMaxRequestSize = 5 << 20 // 5MB
	DefaultCallTimeout    = 30 * time.Second
	DefaultServiceName    = "ner"
)

// defaultClassifierConfig fills in the zero fields of each configured
// classifier.
var defaultClassifierConfig = ClassifierConfig{
	Timeout:  10 * time.Second,
	RetryMax: 3,
}

// LoadConfig loads the config file and ENV variables into a Config struct.
// When configFile is empty, config.yaml in the working directory is used if
// present; otherwise defaults and environment variables alone are used.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		log.Debug("no config.yaml found, using defaults and environment variables")
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := normalize(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every scalar key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("classifiers.default", "")
	v.SetDefault("classifiers.call_timeout", DefaultCallTimeout)
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.max_request_size", DefaultMaxRequestSize)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.required", false)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.service_name", DefaultServiceName)
	v.SetDefault("tracing.insecure", false)
}

// normalize lower-cases classifier names, matching viper's case-insensitive
// keys, and merges per-classifier defaults.
func normalize(cfg *Config) error {
	cfg.Classifiers.Default = strings.ToLower(strings.TrimSpace(cfg.Classifiers.Default))

	models := make(map[string]ClassifierConfig, len(cfg.Classifiers.Models))
	for name, model := range cfg.Classifiers.Models {
		if err := mergo.Merge(&model, defaultClassifierConfig); err != nil {
			return fmt.Errorf("failed to apply defaults to classifier %q: %w", name, err)
		}
		models[strings.ToLower(name)] = model
	}
	cfg.Classifiers.Models = models

	return nil
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	internal.SetLogFormat(cfg.Log.Format)
	log.Info("Log level set to: ", level)
}
