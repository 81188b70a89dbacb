// Package config loads CLI settings with viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	scbind "github.com/reoring/scbind"
	"github.com/reoring/scbind/internal/gen"
)

// Config is the resolved configuration of the scbind CLI.
type Config struct {
	Lang   string // issue message language: en or ja
	Log    LogConfig
	Gen    GenConfig
	Decode DecodeConfig
}

type LogConfig struct {
	Level      string
	Format     string // json or console
	File       string // empty writes to stderr
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type GenConfig struct {
	HnameImport string
	Header      string
}

type DecodeConfig struct {
	Unknown       string // strip or strict
	FailFast      bool
	RejectDupKeys bool
}

// Opt returns the decode options selected by the configuration.
func (d DecodeConfig) Opt() scbind.DecodeOpt {
	return scbind.DecodeOpt{Unknown: scbind.ParseUnknownPolicy(d.Unknown), FailFast: d.FailFast}
}

// Load reads configuration with precedence environment > config file >
// defaults. Environment keys use the SCBIND_ prefix, e.g. SCBIND_LOG_LEVEL.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("lang", "en")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("gen.hname_import", gen.DefaultHnameImport)
	v.SetDefault("gen.header", gen.DefaultHeader)
	v.SetDefault("decode.unknown", "strip")
	v.SetDefault("decode.fail_fast", false)
	v.SetDefault("decode.reject_duplicate_keys", false)

	v.SetEnvPrefix("SCBIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Lang: v.GetString("lang"),
		Log: LogConfig{
			Level:      v.GetString("log.level"),
			Format:     v.GetString("log.format"),
			File:       v.GetString("log.file"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAgeDays: v.GetInt("log.max_age_days"),
			Compress:   v.GetBool("log.compress"),
		},
		Gen: GenConfig{
			HnameImport: v.GetString("gen.hname_import"),
			Header:      v.GetString("gen.header"),
		},
		Decode: DecodeConfig{
			Unknown:       v.GetString("decode.unknown"),
			FailFast:      v.GetBool("decode.fail_fast"),
			RejectDupKeys: v.GetBool("decode.reject_duplicate_keys"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated values and positive limits.
func (c *Config) Validate() error {
	if c.Lang != "en" && c.Lang != "ja" {
		return fmt.Errorf("lang must be en or ja, got %q", c.Lang)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be positive, got %d", c.Log.MaxSizeMB)
	}
	if c.Decode.Unknown != "strip" && c.Decode.Unknown != "strict" {
		return fmt.Errorf("decode.unknown must be strip or strict, got %q", c.Decode.Unknown)
	}
	return nil
}
