// Package config provides types for handling configuration parameters.
package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config handles server-related constants and parameters.
type Config struct {
	ServerAddress    string        `env:"SERVER_ADDRESS" json:"server_address"`
	GRPCAddress      string        `env:"GRPC_ADDRESS" json:"grpc_address"`
	BaseURL          string        `env:"BASE_URL" json:"base_url"`
	FileStoragePath  string        `env:"FILE_STORAGE_PATH" json:"file_storage_path"`
	DatabaseDSN      string        `env:"DATABASE_DSN" json:"database_dsn"`
	TrustedSubnet    string        `env:"TRUSTED_SUBNET" json:"trusted_subnet"`
	UserKey          string        `env:"USER_KEY" json:"-"`
	AuthKey          string        `env:"AUTH_KEY" json:"auth_key"`
	HistoryRetention time.Duration `env:"HISTORY_RETENTION" json:"history_retention"`
	PruneSchedule    string        `env:"PRUNE_SCHEDULE" json:"prune_schedule"`
}

// Defaults applied to fields left empty by every other source.
const (
	DefaultServerAddress    = ":8080"
	DefaultGRPCAddress      = ":3200"
	DefaultBaseURL          = "http://localhost:8080"
	DefaultUserKey          = "jds__63h3_7ds"
	DefaultAuthKey          = "user"
	DefaultHistoryRetention = 30 * 24 * time.Hour
	DefaultPruneSchedule    = "@hourly"
)

// NewDefaultConfiguration sets up an empty configuration to be filled by Parse.
func NewDefaultConfiguration() *Config {
	return &Config{}
}

// Parse fills the configuration from the JSON config file, the environment and command line
// arguments, in increasing order of precedence.
func (c *Config) Parse() error {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	a := fs.String("a", "", "Server address")
	g := fs.String("g", "", "GRPC server address")
	b := fs.String("b", "", "Base URL")
	f := fs.String("f", "", "File storage path")
	d := fs.String("d", "", "Database DSN")
	cfgPath := fs.String("c", "", "JSON configuration file path")
	t := fs.String("t", "", "Trusted subnet in CIDR notation")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}
	return c.assignValues(a, g, b, f, d, cfgPath, t)
}

// assignValues reads the config file and environment, then overrides them with non-empty flags.
func (c *Config) assignValues(a, g, b, f, d, cfgPath, t *string) error {
	path := *cfgPath
	if path == "" {
		path = os.Getenv("CONFIG")
	}
	if path != "" {
		// ReadConfig reads the file and then the environment on top of it
		if err := cleanenv.ReadConfig(path, c); err != nil {
			return err
		}
	} else if err := cleanenv.ReadEnv(c); err != nil {
		return err
	}
	overrides := []struct {
		flag  *string
		field *string
	}{
		{a, &c.ServerAddress},
		{g, &c.GRPCAddress},
		{b, &c.BaseURL},
		{f, &c.FileStoragePath},
		{d, &c.DatabaseDSN},
		{t, &c.TrustedSubnet},
	}
	for _, o := range overrides {
		if *o.flag != "" {
			*o.field = *o.flag
		}
	}
	c.setDefaults()
	return nil
}

func (c *Config) setDefaults() {
	if c.ServerAddress == "" {
		c.ServerAddress = DefaultServerAddress
	}
	if c.GRPCAddress == "" {
		c.GRPCAddress = DefaultGRPCAddress
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserKey == "" {
		c.UserKey = DefaultUserKey
	}
	if c.AuthKey == "" {
		c.AuthKey = DefaultAuthKey
	}
	if c.HistoryRetention == 0 {
		c.HistoryRetention = DefaultHistoryRetention
	}
	if c.PruneSchedule == "" {
		c.PruneSchedule = DefaultPruneSchedule
	}
}
