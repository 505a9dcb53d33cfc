// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
)

const (
	defaultBlockSize = 64 * 1024
	defaultMaxLine   = 1024 * 1024
)

// Config represents the yaml configuration file.
type Config struct {
	BlockSize int                   `yaml:"block_size" cmd:"size in bytes of the staging buffer"`
	MaxLine   int                   `yaml:"max_line" cmd:"maximum line length in bytes accepted by the lines command"`
	Logging   cmdutil.LoggingConfig `yaml:"logging" cmd:"logging configuration"`
}

// loadConfig returns the configuration obtained by reading the config file,
// if any, and then applying the flags that are set, ie. non-zero, and
// finally the defaults for anything that remains unset.
func loadConfig(ctx context.Context, cf CommonFlags, maxLine int) (Config, error) {
	var cfg Config
	if len(cf.Config) > 0 {
		if err := cmdyaml.ParseConfigFileStrict(ctx, cf.Config, &cfg); err != nil {
			return Config{}, err
		}
	}
	cfg.BlockSize = firstNonZero(cf.BlockSize, cfg.BlockSize, defaultBlockSize)
	cfg.MaxLine = firstNonZero(maxLine, cfg.MaxLine, defaultMaxLine)
	lf := cf.LoggingConfig()
	cfg.Logging.Level = firstNonZero(lf.Level, cfg.Logging.Level)
	cfg.Logging.File = firstNonZero(lf.File, cfg.Logging.File)
	// The format flag always has a default value.
	cfg.Logging.Format = firstNonZero(cfg.Logging.Format, lf.Format)
	cfg.Logging.SourceCode = cfg.Logging.SourceCode || lf.SourceCode
	if cfg.BlockSize < 0 {
		return Config{}, fmt.Errorf("invalid block size: %v", cfg.BlockSize)
	}
	if cfg.MaxLine < cfg.BlockSize {
		cfg.MaxLine = cfg.BlockSize
	}
	return cfg, nil
}

func firstNonZero[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}
