// Copyright (c) 2015, the Dartino project authors.  Please see the AUTHORS file
// for details. All rights reserved. Use of this source code is governed by a
// BSD-style license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

func calcClangCommand(builder *commandBuilder) (*command, error) {
	if builder.hostOS == macOSName {
		sdkPath, err := getMacSdkPath(builder.env, builder.cfg.sdkPathCommand)
		if err != nil {
			return nil, err
		}
		builder.addPostUserArgs("-isysroot", sdkPath)
	}
	clangPath := filepath.Join(builder.rootPath, "third_party", "clang", builder.hostOS, "bin", "clang")
	builder.setCompiler(clangPath, clangPath)
	builder.addPreUserArgs(builder.cfg.clangFlags...)

	clangCmd := builder.build()
	printClangCommand(builder.env.stdout(), clangCmd)
	return clangCmd, nil
}

// The build log shows which bundled clang was picked and how it was called.
func printClangCommand(writer io.Writer, clangCmd *command) {
	fmt.Fprintln(writer, clangCmd.path)
	fmt.Fprintf(writer, "'%s'\n", strings.Join(clangCmd.argv(), "' '"))
}

func getMacSdkPath(env env, sdkPathCommand []string) (string, error) {
	sdkCmd := &command{
		path: sdkPathCommand[0],
		args: sdkPathCommand[1:],
	}
	stdoutBuffer := bytes.Buffer{}
	if err := env.run(sdkCmd, nil, &stdoutBuffer, env.stderr()); err != nil {
		if exitCode, ok := getExitCode(err); ok {
			return "", newUserErrorf("%s failed with exit code %d", strings.Join(sdkPathCommand, " "), exitCode)
		}
		return "", wrapErrorwithSourceLocf(err, "failed to get the macOS SDK path. Command: %#v", sdkCmd)
	}
	sdkPath := strings.TrimSpace(stdoutBuffer.String())
	if sdkPath == "" {
		return "", newUserErrorf("%s did not print a macOS SDK path", strings.Join(sdkPathCommand, " "))
	}
	return sdkPath, nil
}
