package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DataDir             string `yaml:"data_dir" mapstructure:"data_dir"`
	AddressBookFile     string `yaml:"addressbook_file" mapstructure:"addressbook_file"`
	NotebookFile        string `yaml:"notebook_file" mapstructure:"notebook_file"`
	DefaultBirthdayDays int    `yaml:"default_birthday_days" mapstructure:"default_birthday_days"`
	OnInvalidRecord     string `yaml:"on_invalid_record" mapstructure:"on_invalid_record"`
	AuditLog            bool   `yaml:"audit_log" mapstructure:"audit_log"`
	Theme               string `yaml:"theme" mapstructure:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:             defaultDataDir(),
		AddressBookFile:     "addressbook.json",
		NotebookFile:        "notes.json",
		DefaultBirthdayDays: 7,
		OnInvalidRecord:     "skip",
		AuditLog:            true,
		Theme:               "dark",
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".satchel"
	}
	return filepath.Join(home, ".satchel")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths
	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "satchel"))
	}
	home, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(home, ".config", "satchel"))

	// Environment variables
	viper.SetEnvPrefix("SATCHEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error produced
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	if c.AddressBookFile == "" || c.NotebookFile == "" {
		return fmt.Errorf("addressbook_file and notebook_file cannot be empty")
	}
	if c.DefaultBirthdayDays < 0 {
		return fmt.Errorf("default_birthday_days must be non-negative, got: %d", c.DefaultBirthdayDays)
	}
	switch c.OnInvalidRecord {
	case "skip", "abort":
		// Valid policies
	default:
		return fmt.Errorf("invalid on_invalid_record: %s (must be 'skip' or 'abort')", c.OnInvalidRecord)
	}
	return nil
}
