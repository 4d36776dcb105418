// Copyright (c) 2025 The RigShare developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package config

import "strings"

// validLogLevels lists the accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if cfg.WalletCap == 0 {
		return ErrZeroWalletCap
	}

	if cfg.LockPeriodSeconds <= 0 {
		return ErrZeroLockPeriod
	}

	if cfg.RewardPerShare == 0 {
		return ErrZeroRewardRate
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return ErrInvalidLogLevel
	}

	return nil
}
