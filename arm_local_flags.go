// Copyright (c) 2015, the Dartino project authors.  Please see the AUTHORS file
// for details. All rights reserved. Use of this source code is governed by a
// BSD-style license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// The local ARM compiler is exec'd by name and looked up on PATH at exec
// time, like execvp would.
func calcArmLocalGccCommand(builder *commandBuilder) *command {
	compilers := builder.cfg.localArmCompilers
	compiler := compilers[len(compilers)-1]
	for _, candidate := range compilers[:len(compilers)-1] {
		if findExecutableOnPath(builder.env, candidate) != "" {
			compiler = candidate
			break
		}
	}
	builder.setCompiler(compiler, compiler)
	builder.addPreUserArgs(builder.cfg.gccFlags...)
	return builder.build()
}

// Returns the first executable regular file called name in the PATH of env,
// or "" if there is none.
func findExecutableOnPath(env env, name string) string {
	for _, dir := range filepath.SplitList(env.getenv("PATH")) {
		dir = strings.Trim(dir, `"`)
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if unix.Access(path, unix.X_OK) == nil {
			return path
		}
	}
	return ""
}
