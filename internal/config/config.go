// Package config loads server settings from flags, environment and an optional file.
package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is used for the flag set and usage output.
	AppName = "calendard"

	// EnvPrefix prefixes every environment variable, e.g. CALENDAR_LOCAL_PORT.
	EnvPrefix = "CALENDAR"
)

// Defaults.
const (
	DefaultLocalPort       = 8080
	DefaultGUIPort         = 3000
	DefaultHost            = "127.0.0.1"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultMaxBodyBytes    = 1 << 20
	DefaultShutdownTimeout = 10 * time.Second
)

// ErrHelp is returned by Load when -h/--help was requested; usage has already been printed.
var ErrHelp = pflag.ErrHelp

// Config holds the server settings.
type Config struct {
	// LocalPort is the port the API listens on.
	LocalPort int `mapstructure:"local-port"`

	// GUIPort is where the companion UI is expected. Informational only.
	GUIPort int `mapstructure:"gui-port"`

	// Host is the bind address.
	Host string `mapstructure:"host"`

	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`

	// MaxBodyBytes caps request bodies; larger bodies get 413.
	MaxBodyBytes int64 `mapstructure:"max-body-bytes"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`

	// Docs serves the Swagger UI under /swagger/.
	Docs bool `mapstructure:"docs"`
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.LocalPort))
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.LocalPort < 1 || c.LocalPort > 65535 {
		errs = append(errs, fmt.Errorf("local-port %d out of range", c.LocalPort))
	}
	if c.GUIPort < 1 || c.GUIPort > 65535 {
		errs = append(errs, fmt.Errorf("gui-port %d out of range", c.GUIPort))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("max-body-bytes must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown-timeout must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load parses args (without the program name) and merges environment
// variables and the optional --config file. Flags win over env, env over
// the file, the file over defaults.
func Load(args []string, usage io.Writer) (*Config, error) {
	fs := newFlagSet(usage)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newFlagSet(usage io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	fs.SetOutput(usage)
	fs.SortFlags = false

	fs.IntP("local-port", "l", DefaultLocalPort, "Set local server port")
	fs.IntP("gui-port", "g", DefaultGUIPort, "Set GUI server port (informational)")
	fs.String("host", DefaultHost, "Bind address")
	fs.String("log-level", DefaultLogLevel, "Log level (debug, info, warn, error)")
	fs.String("log-format", DefaultLogFormat, "Log format (text, json)")
	fs.Int64("max-body-bytes", DefaultMaxBodyBytes, "Maximum request body size in bytes")
	fs.Duration("shutdown-timeout", DefaultShutdownTimeout, "Graceful shutdown timeout")
	fs.Bool("docs", false, "Serve Swagger UI under /swagger/")
	fs.String("config", "", "Path to a config file (yaml, json or toml)")

	fs.Usage = func() {
		fmt.Fprintf(usage, "Usage: %s [options]\n\nAllowed options:\n", AppName)
		fs.PrintDefaults()
	}
	return fs
}
