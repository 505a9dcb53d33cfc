// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/cmdutil/signals"
	"cloudeng.io/errors"
	"cloudeng.io/fifo/fifoio"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openSource(name string) (io.Reader, io.Closer, error) {
	if name == "-" {
		return stdin, nopCloser{}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func createDestination(name string) (io.Writer, io.Closer, error) {
	if name == "-" {
		return stdout, nopCloser{}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

// setup loads the configuration and returns a context with a logger
// attached that is canceled on receipt of an interrupt.
func setup(ctx context.Context, cf CommonFlags, maxLine int) (context.Context, func(), Config, error) {
	cfg, err := loadConfig(ctx, cf, maxLine)
	if err != nil {
		return nil, nil, Config{}, err
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return nil, nil, Config{}, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)
	ctx, cancel := context.WithCancel(ctx)
	ctx, _ = signals.NotifyWithCancel(ctx, signals.Defaults()...)
	return ctx, func() {
		cancel()
		logger.Close()
	}, cfg, nil
}

func copyData(ctx context.Context, values any, args []string) error {
	fv := values.(*copyFlags)
	ctx, done, cfg, err := setup(ctx, fv.CommonFlags, 0)
	if err != nil {
		return err
	}
	defer done()
	src, srcCloser, err := openSource(args[0])
	if err != nil {
		return err
	}
	defer srcCloser.Close()
	dst, dstCloser, err := createDestination(args[1])
	if err != nil {
		return err
	}
	start := time.Now()
	n, err := fifoio.Copy(ctx, dst, src, make([]byte, cfg.BlockSize))
	errs := &errors.M{}
	errs.Append(err, dstCloser.Close())
	if err := errs.Err(); err != nil {
		return fmt.Errorf("copy %v to %v: %w", args[0], args[1], err)
	}
	ctxlog.Logger(ctx).Info("copied", "src", args[0], "dst", args[1], "bytes", n, "block", cfg.BlockSize, "duration", time.Since(start))
	return nil
}

func countLines(ctx context.Context, values any, args []string) error {
	fv := values.(*linesFlags)
	ctx, done, cfg, err := setup(ctx, fv.CommonFlags, fv.MaxLine)
	if err != nil {
		return err
	}
	defer done()
	src, srcCloser, err := openSource(args[0])
	if err != nil {
		return err
	}
	defer srcCloser.Close()
	lr := fifoio.NewLineReader(src, make([]byte, cfg.BlockSize), cfg.MaxLine)
	longest, longestAt := 0, 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := lr.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%v: line %v: %w", args[0], lr.LineNumber()+1, err)
		}
		if len(line) > longest {
			longest, longestAt = len(line), lr.LineNumber()
		}
	}
	ctxlog.Logger(ctx).Info("counted lines", "src", args[0], "lines", lr.LineNumber(), "block", cfg.BlockSize, "max_line", cfg.MaxLine)
	fmt.Fprintf(stdout, "lines: %v, longest: %v (line %v)\n", lr.LineNumber(), longest, longestAt)
	return nil
}

func printConfig(ctx context.Context, values any, _ []string) error {
	fv := values.(*configFlags)
	cfg, err := loadConfig(ctx, fv.CommonFlags, fv.MaxLine)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
