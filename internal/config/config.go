// Package config loads the httpdate command configuration from defaults, an
// optional config file and HTTPDATE_* environment variables.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to upper-cased keys, so log.level is read from
// HTTPDATE_LOG_LEVEL.
const EnvPrefix = "HTTPDATE"

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", LogText)
	v.SetDefault("parse.lenient", false)
	v.SetDefault("parse.trim", true)
	v.SetDefault("output.format", OutputIMF)
	v.SetDefault("clock.cache_size", 1024)
}

// Load reads path (if not empty) into v and maps the result onto a Config.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated keys.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case OutputIMF, OutputUnix, OutputRFC3339:
	default:
		return errors.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	switch c.Log.Format {
	case LogText, LogJSON:
	default:
		return errors.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	if c.Clock.CacheSize < 0 {
		c.Clock.CacheSize = 0
	}
	return nil
}
