// Copyright (c) 2015, the Dartino project authors.  Please see the AUTHORS file
// for details. All rights reserved. Use of this source code is governed by a
// BSD-style license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/kballard/go-shellquote"
	"golang.org/x/sys/unix"
)

type env interface {
	getenv(key string) string
	environ() []string
	getwd() string
	// GOOS of the host the wrapper runs on.
	goos() string
	stdout() io.Writer
	stderr() io.Writer
	run(cmd *command, stdin io.Reader, stdout io.Writer, stderr io.Writer) error
	exec(cmd *command) error
}

type processEnv struct {
	wd string
}

func newProcessEnv() (env, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, wrapErrorwithSourceLocf(err, "failed to read working directory")
	}
	return &processEnv{wd: wd}, nil
}

var _ env = (*processEnv)(nil)

func (env *processEnv) getenv(key string) string {
	return os.Getenv(key)
}

func (env *processEnv) environ() []string {
	return os.Environ()
}

func (env *processEnv) getwd() string {
	return env.wd
}

func (env *processEnv) goos() string {
	return runtime.GOOS
}

func (env *processEnv) stdout() io.Writer {
	return os.Stdout
}

func (env *processEnv) stderr() io.Writer {
	return os.Stderr
}

// Note: a bare command name is resolved against PATH by exec.Command. If that
// lookup fails the name is passed to execve as is and the kernel reports the
// error.
func (env *processEnv) exec(cmd *command) error {
	execCmd := newExecCmd(env, cmd)
	return unix.Exec(execCmd.Path, execCmd.Args, execCmd.Env)
}

func (env *processEnv) run(cmd *command, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	execCmd := newExecCmd(env, cmd)
	execCmd.Stdin = stdin
	execCmd.Stdout = stdout
	execCmd.Stderr = stderr
	return execCmd.Run()
}

type printingEnv struct {
	env
}

var _ env = (*printingEnv)(nil)

func (env *printingEnv) exec(cmd *command) error {
	printCmd(env, cmd)
	return env.env.exec(cmd)
}

func (env *printingEnv) run(cmd *command, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	printCmd(env, cmd)
	return env.env.run(cmd, stdin, stdout, stderr)
}

func printCmd(env env, cmd *command) {
	fmt.Fprintf(env.stderr(), "cd %s && %s\n", shellquote.Join(env.getwd()), shellquote.Join(append([]string{cmd.path}, cmd.args...)...))
}
