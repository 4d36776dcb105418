// Copyright (c) 2025 The RigShare developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package config holds the library configuration: data directory for the
// persistent ledger store, the rig enforcement constants, and logging
// verbosity. Configuration loads from a YAML file with defaults applied
// for missing keys.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/rigshare/librigshare-go/rig"
)

// Config is the library configuration.
type Config struct {
	DataDir           string `mapstructure:"data_dir"`
	WalletCap         uint64 `mapstructure:"wallet_cap"`
	LockPeriodSeconds int64  `mapstructure:"lock_period_seconds"`
	RewardPerShare    uint64 `mapstructure:"reward_per_share"`
	LogLevel          string `mapstructure:"log_level"`
}

// DefaultConfig returns the reference behavior configuration.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataDir:           filepath.Join(home, ".rigshare"),
		WalletCap:         rig.DefaultWalletCap,
		LockPeriodSeconds: rig.DefaultLockPeriod,
		RewardPerShare:    rig.DefaultRewardPerShare,
		LogLevel:          "info",
	}
}

// LoadConfig reads a YAML configuration file, applying defaults for any
// missing keys, and validates the result. A missing file yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetDefault("data_dir", defaults.DataDir)
	v.SetDefault("wallet_cap", defaults.WalletCap)
	v.SetDefault("lock_period_seconds", defaults.LockPeriodSeconds)
	v.SetDefault("reward_per_share", defaults.RewardPerShare)
	v.SetDefault("log_level", defaults.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %w", ErrConfigNotReadable, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigNotReadable, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RigParams returns the rig enforcement constants from the configuration.
func (c Config) RigParams() rig.Params {
	return rig.Params{
		WalletCap:      c.WalletCap,
		LockPeriod:     c.LockPeriodSeconds,
		RewardPerShare: c.RewardPerShare,
	}
}

// StorePath returns the path of the bbolt ledger database.
func (c Config) StorePath() string {
	return filepath.Join(c.DataDir, "ledger.db")
}
