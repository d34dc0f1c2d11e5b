package config

import (
	"fmt"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	RaceBook    RaceBookConfig `mapstructure:"raceBook"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// RaceBookConfig contains race book settings
type RaceBookConfig struct {
	MaxSprinters int      `mapstructure:"maxSprinters"` // 0 means unlimited
	Seed         []string `mapstructure:"seed"`         // "First Last H:MM:SS" entries
}

// Addr returns the listen address for the HTTP server
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Validate ensures all required configuration values are present
func (c *Config) Validate() error {
	var missingConfigs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if c.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if c.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if c.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}
	if c.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if c.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if c.Environment != Development && c.Environment != Production && c.Environment != Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if c.RaceBook.MaxSprinters < 0 {
		return fmt.Errorf("invalid raceBook.maxSprinters: %d, must not be negative", c.RaceBook.MaxSprinters)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}
	return nil
}
