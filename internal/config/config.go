// Package config loads dbform settings from a YAML file, DBFORM_ environment
// variables and built-in defaults, in increasing order of precedence from
// defaults to environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/goliatone/go-dbform/internal/logging"
)

// EnvPrefix namespaces environment overrides: store.dsn reads DBFORM_STORE_DSN.
const EnvPrefix = "DBFORM"

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Site   SiteConfig   `mapstructure:"site"`
	Admin  AdminConfig  `mapstructure:"admin"`
	Store  StoreConfig  `mapstructure:"store"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type SiteConfig struct {
	PagesDir         string `mapstructure:"pages_dir"`
	BasePath         string `mapstructure:"base_path"`
	ValidationScript string `mapstructure:"validation_script"`
	MaxUploadBytes   int64  `mapstructure:"max_upload_bytes"`
}

type AdminConfig struct {
	BasePath string        `mapstructure:"base_path"`
	Lookback time.Duration `mapstructure:"lookback"`
	// CSRFKey enables CSRF protection when set. It must be 32 bytes.
	CSRFKey    string `mapstructure:"csrf_key"`
	CSRFSecure bool   `mapstructure:"csrf_secure"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var defaults = map[string]any{
	"server.addr":            ":8080",
	"site.pages_dir":         "./pages",
	"site.base_path":         "/",
	"site.validation_script": "/javascripts/validation.js",
	"site.max_upload_bytes":  int64(10 << 20),
	"admin.base_path":        "/admin/form_responses",
	"admin.lookback":         "168h",
	"admin.csrf_key":         "",
	"admin.csrf_secure":      false,
	"store.driver":           DriverMemory,
	"store.dsn":              "",
	"log.level":              "info",
	"log.format":             logging.FormatText,
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() Config {
	cfg, err := decode(newViper())
	if err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

// Load reads file when it is non-empty, otherwise looks for an optional
// .dbform.yaml in the working directory and then the home directory.
func Load(file string) (Config, error) {
	v := newViper()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".dbform")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", describe(file), err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot start a server.
func (c Config) Validate() error {
	var errs []error
	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if strings.TrimSpace(c.Store.DSN) == "" {
			errs = append(errs, errors.New("store.dsn is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.driver %q is not one of %s, %s", c.Store.Driver, DriverMemory, DriverPostgres))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if err := logging.CheckFormat(c.Log.Format); err != nil {
		errs = append(errs, err)
	}
	if c.Admin.Lookback <= 0 {
		errs = append(errs, fmt.Errorf("admin.lookback must be positive, got %s", c.Admin.Lookback))
	}
	if key := c.Admin.CSRFKey; key != "" && len(key) != 32 {
		errs = append(errs, fmt.Errorf("admin.csrf_key must be 32 bytes, got %d", len(key)))
	}
	if c.Site.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("site.max_upload_bytes must be positive, got %d", c.Site.MaxUploadBytes))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

func describe(file string) string {
	if file == "" {
		return ".dbform.yaml"
	}
	return file
}
