// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"io"
	"log/slog"
	"maps"
	"os"

	"cogentcore.org/shadergen/base/logx"
)

// Config contains the configuration information that
// controls the behavior of exec. It is passed to most
// high-level functions, and a default version of it
// can be easily constructed using [Minor].
type Config struct {

	// Stdout is the writer to write the standard output of called commands to.
	// It can be set to nil to disable the writing of the standard output.
	Stdout io.Writer

	// Stderr is the writer to write the standard error of called commands to.
	// It can be set to nil to disable the writing of the standard error.
	Stderr io.Writer

	// Stdin is the reader to use as the standard input.
	Stdin io.Reader

	// Commands is the writer to write the string representation of the called commands to.
	// It can be set to nil to disable the writing of the string representations of the called commands.
	Commands io.Writer

	// Dir is the directory to execute commands in. If it is unset,
	// commands are run in the current directory.
	Dir string

	// Env contains any additional environment variables specified.
	Env map[string]string
}

// Minor returns the default [Config] object for a minor command,
// based on [logx.UserLevel]. It should be used for commands that
// support an app behind the scenes and are less important for the
// user to know about and be able to see the output of.
func Minor() *Config {
	if logx.UserLevel <= slog.LevelDebug {
		return &Config{
			Stdout:   os.Stdout,
			Stderr:   os.Stderr,
			Stdin:    os.Stdin,
			Commands: os.Stdout,
			Env:      map[string]string{},
		}
	}
	return &Config{
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Env:    map[string]string{},
	}
}

// Clone returns a copy of the config with its own environment map,
// so that its writers can be redirected without affecting c.
func (c *Config) Clone() *Config {
	nc := *c
	nc.Env = maps.Clone(c.Env)
	return &nc
}

// SetStderr sets the standard error and returns the config for chaining.
func (c *Config) SetStderr(w io.Writer) *Config {
	c.Stderr = w
	return c
}
