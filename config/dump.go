package config

import (
	"gopkg.in/yaml.v3"
)

const redacted = "**redacted**"

// Dump renders the effective configuration as YAML. Secrets are redacted.
func Dump(cfg *Config) ([]byte, error) {
	c := *cfg
	if c.Auth.Secret != "" {
		c.Auth.Secret = redacted
	}

	return yaml.Marshal(&c)
}
