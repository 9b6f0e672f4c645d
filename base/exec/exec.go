// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted in part from: https://github.com/magefile/mage
// Copyright presumably by Nate Finch, primary contributor
// Apache License, Version 2.0, January 2004

// Package exec provides an easy way to run commands, with
// configurable output routing and command echoing.
package exec

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"cogentcore.org/shadergen/base/errors"
	"cogentcore.org/shadergen/base/logx"
	"github.com/mattn/go-shellwords"
)

// Exec executes the command, piping its stdout and stderr to the config
// writers. If the command fails, it will return an error with the command output.
// The cmd and args are passed to the process verbatim: no shell
// and no $FOO expansion is involved, so args may safely hold
// arbitrary file paths. Variables in [Config.Env] are added to
// the environment of the process.
//
// Ran reports if the command ran (rather than was not found or not executable).
// Code reports the exit code the command returned if it ran; it is -1
// if the command was terminated by a signal. If err == nil, ran
// is always true and code is always 0.
func (c *Config) Exec(cmd string, args ...string) (ran bool, code int, err error) {
	ran, code, err = c.run(cmd, args...)
	if err == nil {
		return true, 0, nil
	}
	return ran, code, fmt.Errorf(`failed to run "%s %s": %w`, cmd, strings.Join(args, " "), err)
}

func (c *Config) run(cmd string, args ...string) (ran bool, code int, err error) {
	cm := exec.Command(cmd, args...)
	cm.Env = os.Environ()
	for k, v := range c.Env {
		cm.Env = append(cm.Env, k+"="+v)
	}
	cm.Stderr = c.Stderr
	cm.Stdout = c.Stdout
	cm.Stdin = c.Stdin
	cm.Dir = c.Dir

	if c.Commands != nil {
		if cm.Dir != "" {
			c.Commands.Write([]byte(logx.CmdColor(cm.Dir) + ": "))
		}
		c.Commands.Write([]byte(logx.CmdColor(cmd+" "+strings.Join(args, " ")) + "\n"))
	}
	err = cm.Run()
	return CmdRan(err), ExitStatus(err), err
}

// Args returns the given string parsed into separate args
// that can be passed into run commands, using shell quoting rules.
func Args(str string) ([]string, error) {
	args, err := shellwords.Parse(str)
	if err != nil {
		return nil, fmt.Errorf("parsing command line %q: %w", str, err)
	}
	return args, nil
}

// LookPath searches for an executable named file in the
// directories named by the PATH environment variable, like [exec.LookPath].
func LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// CmdRan examines the error to determine if it was generated as a result of a
// command running via os/exec.Command. If the error is nil, or the command ran
// (even if it exited with a non-zero exit code or was killed by a signal),
// CmdRan reports true. If the error is an unrecognized type, or it is an error
// from exec.Command that says the command failed to run (usually due to the
// command not existing or not being executable), it reports false.
func CmdRan(err error) bool {
	if err == nil {
		return true
	}
	var ee *exec.ExitError
	return errors.As(err, &ee)
}

type exitStatus interface {
	ExitStatus() int
}

// ExitStatus returns the exit status of the error if it is an exec.ExitError
// or if it implements ExitStatus() int.
// 0 if it is nil or 1 if it is a different error.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(exitStatus); ok {
		return e.ExitStatus()
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if ex, ok := ee.Sys().(exitStatus); ok {
			return ex.ExitStatus()
		}
		return ee.ExitCode()
	}
	return 1
}

// ExitReason returns a short description of how the command
// behind err ended, such as "exit status 2" or
// "signal: segmentation fault". It falls back to the error text
// if err does not come from a command that ran, and returns ""
// for a nil error.
func ExitReason(err error) string {
	if err == nil {
		return ""
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ProcessState.String()
	}
	return err.Error()
}
