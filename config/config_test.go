// Copyright (c) 2025 The RigShare developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigshare/librigshare-go/rig"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, rig.DefaultWalletCap, cfg.WalletCap)
	assert.Equal(t, rig.DefaultLockPeriod, cfg.LockPeriodSeconds)
	assert.Equal(t, rig.DefaultRewardPerShare, cfg.RewardPerShare)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"empty data dir", func(c *Config) { c.DataDir = "" }, ErrEmptyDataDir},
		{"zero wallet cap", func(c *Config) { c.WalletCap = 0 }, ErrZeroWalletCap},
		{"zero lock period", func(c *Config) { c.LockPeriodSeconds = 0 }, ErrZeroLockPeriod},
		{"negative lock period", func(c *Config) { c.LockPeriodSeconds = -1 }, ErrZeroLockPeriod},
		{"zero reward rate", func(c *Config) { c.RewardPerShare = 0 }, ErrZeroRewardRate},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, ValidateConfig(cfg), tt.wantErr)
		})
	}
}

func TestValidateConfig_LogLevelCaseInsensitive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "DEBUG"
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfig(filepath.Join(dir, "nope.yaml"))
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.WalletCap, cfg.WalletCap)
	assert.Equal(t, defaults.LockPeriodSeconds, cfg.LockPeriodSeconds)
	assert.Equal(t, defaults.RewardPerShare, cfg.RewardPerShare)
	assert.Equal(t, defaults.LogLevel, cfg.LogLevel)
}

func TestLoadConfig_OverridesAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "wallet_cap: 25\nlock_period_seconds: 3600\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(25), cfg.WalletCap)
	assert.Equal(t, int64(3600), cfg.LockPeriodSeconds)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, rig.DefaultRewardPerShare, cfg.RewardPerShare)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoadConfig_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wallet_cap: 0\n"), 0600))

	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrZeroWalletCap)
}

func TestRigParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WalletCap = 50
	cfg.LockPeriodSeconds = 600
	cfg.RewardPerShare = 7

	params := cfg.RigParams()
	assert.Equal(t, uint64(50), params.WalletCap)
	assert.Equal(t, int64(600), params.LockPeriod)
	assert.Equal(t, uint64(7), params.RewardPerShare)
}

func TestStorePath(t *testing.T) {
	cfg := Config{DataDir: "/tmp/rigshare"}
	assert.Equal(t, filepath.Join("/tmp/rigshare", "ledger.db"), cfg.StorePath())
}
