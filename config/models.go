package config

import "time"

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	Classifiers ClassifiersConfig `mapstructure:"classifiers" yaml:"classifiers" json:"classifiers"`
	Server      ServerConfig      `mapstructure:"server"      yaml:"server"      json:"server"`
	Log         LogConfig         `mapstructure:"log"         yaml:"log"         json:"log"`
	Auth        AuthConfig        `mapstructure:"auth"        yaml:"auth"        json:"auth"`
	Tracing     TracingConfig     `mapstructure:"tracing"     yaml:"tracing"     json:"tracing"`
}

// ClassifiersConfig names the classifiers loaded at startup and the one used
// when a caller does not ask for a specific classifier.
type ClassifiersConfig struct {
	Default string `mapstructure:"default" yaml:"default" json:"default" validate:"required"`
	// Models maps a classifier name to its artifact. Names are case-insensitive.
	Models map[string]ClassifierConfig `mapstructure:"models" yaml:"models" json:"models" validate:"required,min=1,dive"`
	// CallTimeout bounds a single tagging call. Zero disables the bound.
	CallTimeout time.Duration `mapstructure:"call_timeout" yaml:"call_timeout" json:"call_timeout" validate:"min=0"`
}

// ClassifierConfig describes where a classifier comes from. Exactly one of
// Path (a gazetteer model file, optionally .gz) or URL (a remote tagger) is set.
type ClassifierConfig struct {
	Path     string        `mapstructure:"path"      yaml:"path,omitempty"      json:"path,omitempty"      validate:"required_without=URL,excluded_with=URL"`
	URL      string        `mapstructure:"url"       yaml:"url,omitempty"       json:"url,omitempty"       validate:"omitempty,url"`
	Timeout  time.Duration `mapstructure:"timeout"   yaml:"timeout,omitempty"   json:"timeout,omitempty"   validate:"min=0"`
	RetryMax int           `mapstructure:"retry_max" yaml:"retry_max,omitempty" json:"retry_max,omitempty" validate:"min=0"`
}

type ServerConfig struct {
	Host           string `mapstructure:"host"             yaml:"host"             json:"host"`
	Port           int    `mapstructure:"port"             yaml:"port"             json:"port"             validate:"min=0,max=65535"`
	MaxRequestSize int64  `mapstructure:"max_request_size" yaml:"max_request_size" json:"max_request_size" validate:"min=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"  json:"level"  validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	Format string `mapstructure:"format" yaml:"format" json:"format" validate:"omitempty,oneof=text json"`
}

type AuthConfig struct {
	Secret   string `mapstructure:"secret"   yaml:"secret"   json:"secret"   validate:"required_if=Required true"`
	Required bool   `mapstructure:"required" yaml:"required" json:"required"`
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"      yaml:"enabled"      json:"enabled"`
	Endpoint    string `mapstructure:"endpoint"     yaml:"endpoint"     json:"endpoint"     validate:"required_if=Enabled true"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name" json:"service_name"`
	Insecure    bool   `mapstructure:"insecure"     yaml:"insecure"     json:"insecure"`
}
