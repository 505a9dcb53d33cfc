// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command fifocopy stages data from a source to a destination through a
// fixed size fifo buffer. It is primarily useful for exercising and
// measuring the fifo and fifoio packages with different block sizes.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config    string `subcmd:"config,,'yaml configuration file, flags that are set take precedence over its values'"`
	BlockSize int    `subcmd:"block-size,0,'size in bytes of the staging buffer, 0 uses the configured or default size'"`
}

type copyFlags struct {
	CommonFlags
}

type linesFlags struct {
	CommonFlags
	MaxLine int `subcmd:"max-line,0,'maximum line length in bytes, 0 uses the configured or default length'"`
}

type configFlags struct {
	CommonFlags
	MaxLine int `subcmd:"max-line,0,'maximum line length in bytes, 0 uses the configured or default length'"`
}

func init() {
	copyCmd := subcmd.NewCommand("copy",
		subcmd.MustRegisterFlagStruct(&copyFlags{}, nil, nil),
		copyData, subcmd.ExactlyNumArguments(2))
	copyCmd.Document(`copy a file, or stdin, to a file, or stdout, staging it through a fixed size buffer. Use - for stdin or stdout.`, "<source>", "<destination>")

	linesCmd := subcmd.NewCommand("lines",
		subcmd.MustRegisterFlagStruct(&linesFlags{}, nil, nil),
		countLines, subcmd.ExactlyNumArguments(1))
	linesCmd.Document(`count the lines in a file, or stdin, and report the longest.`, "<source>")

	configCmd := subcmd.NewCommand("config",
		subcmd.MustRegisterFlagStruct(&configFlags{}, nil, nil),
		printConfig, subcmd.WithoutArguments())
	configCmd.Document(`print the effective configuration as yaml.`)

	cmdSet = subcmd.NewCommandSet(copyCmd, linesCmd, configCmd)
	cmdSet.Document(`stage data through a fixed size fifo buffer.

The size of the buffer may be set via the --block-size flag or a yaml
configuration file specified via --config, for example:

  block_size: 65536
  max_line: 1048576
  logging:
    level: 2
    format: text
`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
