package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. RB_SERVER_PORT
const EnvPrefix = "RB"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration for the environment selected by --env or RB_ENV.
// Precedence, highest first: flags, environment, config file, defaults.
func LoadConfig(args []string) (*Config, error) {
	// Missing .env files are normal outside development
	_ = loadDotEnvFile()

	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	env := getEnvironment(flags)

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	if dir, _ := flags.GetString("config-dir"); dir != "" {
		v.AddConfigPath(dir)
	}
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// newFlagSet declares the command-line flags understood by every binary
func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("relay-race-book", pflag.ContinueOnError)
	flags.String("env", "", "environment: development, production or test (overrides RB_ENV)")
	flags.String("config-dir", "", "additional directory to search for <env>.yaml")
	flags.Int("port", 0, "HTTP server port")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	return flags
}

// bindFlags applies explicitly set flags last so they win over file and environment values
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags.Changed("port") {
		port, err := flags.GetInt("port")
		if err != nil {
			return fmt.Errorf("error reading flag port: %w", err)
		}
		v.Set("server.port", port)
	}
	if flags.Changed("log-level") {
		level, err := flags.GetString("log-level")
		if err != nil {
			return fmt.Errorf("error reading flag log-level: %w", err)
		}
		v.Set("logger.level", level)
	}
	return nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values so every key is known to viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.callerInfo", false)

	v.SetDefault("raceBook.maxSprinters", 0)
	v.SetDefault("raceBook.seed", []string{})
}

// getEnvironment picks the environment from the --env flag, then RB_ENV
func getEnvironment(flags *pflag.FlagSet) string {
	env, _ := flags.GetString("env")
	if env == "" {
		env = os.Getenv(EnvPrefix + "_ENV")
	}
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the documented variable names onto camelCase keys
// that AutomaticEnv cannot derive on its own
func processEnvOverrides(v *viper.Viper) {
	if host := os.Getenv("RB_SERVER_HOST"); host != "" {
		v.Set("server.host", host)
	}
	if port := getEnvInt("RB_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if timeout := getEnvInt("RB_SERVER_SHUTDOWN_TIMEOUT", 0); timeout > 0 {
		v.Set("server.shutdownTimeout", timeout)
	}

	if level := os.Getenv("RB_LOGGER_LEVEL"); level != "" {
		v.Set("logger.level", level)
	}
	if format := os.Getenv("RB_LOGGER_FORMAT"); format != "" {
		v.Set("logger.format", format)
	}

	if maxSprinters := getEnvInt("RB_RACEBOOK_MAX_SPRINTERS", -1); maxSprinters >= 0 {
		v.Set("raceBook.maxSprinters", maxSprinters)
	}
	if seed := os.Getenv("RB_RACEBOOK_SEED"); seed != "" {
		v.Set("raceBook.seed", splitSeed(seed))
	}
}

// splitSeed splits a semicolon-separated list of seed entries
func splitSeed(raw string) []string {
	var entries []string
	for _, entry := range strings.Split(raw, ";") {
		if entry = strings.TrimSpace(entry); entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts second counts read from config into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second
}
