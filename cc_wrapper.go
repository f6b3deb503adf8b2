// Copyright (c) 2015, the Dartino project authors.  Please see the AUTHORS file
// for details. All rights reserved. Use of this source code is governed by a
// BSD-style license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

func callCompiler(env env, cfg *config, inputCmd *command) int {
	exitCode, compilerErr := callCompilerInternal(env, cfg, inputCmd)
	if compilerErr != nil {
		printCompilerError(env.stderr(), compilerErr)
		exitCode = 1
	}
	return exitCode
}

func callCompilerInternal(env env, cfg *config, inputCmd *command) (exitCode int, err error) {
	mainBuilder, err := newCommandBuilder(env, cfg, inputCmd)
	if err != nil {
		return 0, err
	}
	processPrintCmdlineFlag(mainBuilder)
	if err := processSanitizerFlags(mainBuilder); err != nil {
		return 0, err
	}
	selected, err := processToolchainFlags(mainBuilder)
	if err != nil {
		return 0, err
	}

	var compilerCmd *command
	switch selected {
	case clangToolchain:
		compilerCmd, err = calcClangCommand(mainBuilder)
	case armGccToolchain:
		compilerCmd = calcGccCommand(mainBuilder, cfg.armGcc)
	case arm64GccToolchain:
		compilerCmd = calcGccCommand(mainBuilder, cfg.arm64Gcc)
	case armEmbeddedGccToolchain:
		compilerCmd, err = calcArmEmbeddedGccCommand(mainBuilder)
	case armLocalGccToolchain:
		compilerCmd = calcArmLocalGccCommand(mainBuilder)
	default:
		compilerCmd = calcGccCommand(mainBuilder, cfg.systemGcc)
	}
	if err != nil {
		return 0, err
	}
	// Note: exec only returns on failure, or when the env doesn't
	// really replace the process, e.g. in tests.
	if err := mainBuilder.env.exec(compilerCmd); err != nil {
		return 0, wrapExecError(compilerCmd, err)
	}
	return 0, nil
}

func getAbsWrapperDir(env env, wrapperPath string) (string, error) {
	if !strings.ContainsRune(wrapperPath, filepath.Separator) {
		// Invoked via PATH.
		if pathWrapper := findExecutableOnPath(env, wrapperPath); pathWrapper != "" {
			wrapperPath = pathWrapper
		}
	}
	if !filepath.IsAbs(wrapperPath) {
		wrapperPath = filepath.Join(env.getwd(), wrapperPath)
	}
	evaledCmdPath, err := filepath.EvalSymlinks(wrapperPath)
	if err != nil {
		return "", wrapErrorwithSourceLocf(err, "failed to evaluate symlinks for %s", wrapperPath)
	}
	return filepath.Dir(evaledCmdPath), nil
}

func resolveRootPath(absWrapperDir string, rootRelPath string) string {
	if filepath.IsAbs(rootRelPath) {
		return filepath.Clean(rootRelPath)
	}
	return filepath.Join(absWrapperDir, rootRelPath)
}

func printCompilerError(writer io.Writer, compilerErr error) {
	if _, ok := compilerErr.(userError); ok {
		fmt.Fprintf(writer, "%s\n", compilerErr)
	} else {
		fmt.Fprintf(writer,
			"Internal error. Please report to the Dartino project.\n%s\n",
			compilerErr)
	}
}
