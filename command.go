// Copyright (c) 2015, the Dartino project authors.  Please see the AUTHORS file
// for details. All rights reserved. Use of this source code is governed by a
// BSD-style license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/exec"
)

type command struct {
	path string
	// Program name passed to the new process image. Defaults to path.
	argv0 string
	args  []string
}

func newProcessCommand() *command {
	return &command{
		path: os.Args[0],
		args: os.Args[1:],
	}
}

func (cmd *command) argv() []string {
	argv0 := cmd.argv0
	if argv0 == "" {
		argv0 = cmd.path
	}
	return append([]string{argv0}, cmd.args...)
}

func newExecCmd(env env, cmd *command) *exec.Cmd {
	execCmd := exec.Command(cmd.path, cmd.args...)
	execCmd.Args = cmd.argv()
	execCmd.Env = env.environ()
	execCmd.Dir = env.getwd()
	return execCmd
}

func newCommandBuilder(env env, cfg *config, cmd *command) (*commandBuilder, error) {
	absWrapperDir, err := getAbsWrapperDir(env, cmd.path)
	if err != nil {
		return nil, err
	}
	return &commandBuilder{
		args:     createBuilderArgs( /*fromUser=*/ true, cmd.args),
		env:      env,
		cfg:      cfg,
		rootPath: resolveRootPath(absWrapperDir, cfg.rootRelPath),
		hostOS:   hostOSName(env.goos()),
	}, nil
}

type commandBuilder struct {
	path  string
	argv0 string
	args  []builderArg
	env   env
	cfg   *config
	// Checkout root that holds third_party/.
	rootPath string
	// OS name as used in third_party/ directory names, e.g. "mac".
	hostOS string
}

type builderArg struct {
	value    string
	fromUser bool
}

func createBuilderArgs(fromUser bool, args []string) []builderArg {
	builderArgs := make([]builderArg, len(args))
	for i, arg := range args {
		builderArgs[i] = builderArg{value: arg, fromUser: fromUser}
	}
	return builderArgs
}

func (builder *commandBuilder) setCompiler(path string, argv0 string) {
	builder.path = path
	builder.argv0 = argv0
}

func (builder *commandBuilder) addPreUserArgs(args ...string) {
	index := 0
	for _, arg := range builder.args {
		if arg.fromUser {
			break
		}
		index++
	}
	builder.args = append(builder.args[:index], append(createBuilderArgs( /*fromUser=*/ false, args), builder.args[index:]...)...)
}

func (builder *commandBuilder) addPostUserArgs(args ...string) {
	builder.args = append(builder.args, createBuilderArgs( /*fromUser=*/ false, args)...)
}

// Removes all user arguments for which remove returns true. Reports whether
// anything was removed.
func (builder *commandBuilder) removeUserArgs(remove func(value string) bool) (removed bool) {
	// See https://github.com/golang/go/wiki/SliceTricks
	newArgs := builder.args[:0]
	for _, arg := range builder.args {
		if arg.fromUser && remove(arg.value) {
			removed = true
			continue
		}
		newArgs = append(newArgs, arg)
	}
	builder.args = newArgs
	return removed
}

// Removes the first user argument equal to value. Reports whether one was found.
func (builder *commandBuilder) removeFirstUserArg(value string) bool {
	for i, arg := range builder.args {
		if arg.fromUser && arg.value == value {
			builder.args = append(builder.args[:i], builder.args[i+1:]...)
			return true
		}
	}
	return false
}

func (builder *commandBuilder) hasUserArg(value string) bool {
	for _, arg := range builder.args {
		if arg.fromUser && arg.value == value {
			return true
		}
	}
	return false
}

func (builder *commandBuilder) build() *command {
	cmdArgs := make([]string, len(builder.args))
	for i, builderArg := range builder.args {
		cmdArgs[i] = builderArg.value
	}
	return &command{
		path:  builder.path,
		argv0: builder.argv0,
		args:  cmdArgs,
	}
}
