// Copyright (c) 2025 The RigShare developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package config

import "errors"

var (
	// ErrEmptyDataDir indicates the data directory path is empty.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty")

	// ErrZeroWalletCap indicates the per-wallet cap is zero.
	ErrZeroWalletCap = errors.New("config: wallet cap must be greater than zero")

	// ErrZeroLockPeriod indicates the claim lock period is not positive.
	ErrZeroLockPeriod = errors.New("config: lock period must be greater than zero")

	// ErrZeroRewardRate indicates the reward rate per share is zero.
	ErrZeroRewardRate = errors.New("config: reward per share must be greater than zero")

	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config: invalid log level (must be \"debug\", \"info\", \"warn\", or \"error\")")

	// ErrConfigNotReadable indicates the configuration file exists but
	// cannot be read or parsed.
	ErrConfigNotReadable = errors.New("config: configuration file not readable")
)
