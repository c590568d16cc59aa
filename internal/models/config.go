package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	StorageDriverFile     = "file"
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	Environment   string        `mapstructure:"environment"`
	StorageDriver string        `mapstructure:"storage_driver"`
	StoragePath   string        `mapstructure:"storage_path"`
	DatabaseURL   string        `mapstructure:"database_url"`
	ToastDuration time.Duration `mapstructure:"toast_duration"`
	LoginDelay    time.Duration `mapstructure:"login_delay"`
	SeedUsers     int           `mapstructure:"seed_users"`
	SeedMenuItems int           `mapstructure:"seed_menu_items"`
	SeedOrders    int           `mapstructure:"seed_orders"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath(".")
		viper.SetConfigName("restodash")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("environment", "development")
	viper.SetDefault("storage_driver", StorageDriverFile)
	viper.SetDefault("storage_path", "restodash.state.json")
	viper.SetDefault("toast_duration", "3s")
	viper.SetDefault("login_delay", "1s")
	viper.SetDefault("seed_users", 0)
	viper.SetDefault("seed_menu_items", 0)
	viper.SetDefault("seed_orders", 0)

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine, defaults and flags cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
