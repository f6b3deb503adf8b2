// Copyright (c) 2015, the Dartino project authors.  Please see the AUTHORS file
// for details. All rights reserved. Use of this source code is governed by a
// BSD-style license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const mainCc = "main.cc"
const wrapperPath = "./tools/cc_wrapper"

type testContext struct {
	t       *testing.T
	tempDir string
	env     []string
	hostOS  string
	cfg     *config
	// All commands passed to run or exec, in order.
	cmds         []*command
	execCmd      *command
	cmdMock      func(cmd *command, stdout io.Writer, stderr io.Writer) error
	stdoutBuffer bytes.Buffer
	stderrBuffer bytes.Buffer
}

func withTestContext(t *testing.T, work func(ctx *testContext)) {
	t.Parallel()
	// The wrapper resolves symlinks, so the temp dir has to be resolved too
	// (e.g. /tmp -> /private/tmp on Mac).
	tempDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Unable to resolve the temp dir. Error: %s", err)
	}

	ctx := testContext{
		t:       t,
		tempDir: tempDir,
		env:     nil,
		hostOS:  "linux",
		cfg:     getDartinoConfig(),
	}
	work(&ctx)
}

var _ env = (*testContext)(nil)

func (ctx *testContext) getenv(key string) string {
	for i := len(ctx.env) - 1; i >= 0; i-- {
		entry := ctx.env[i]
		if strings.HasPrefix(entry, key+"=") {
			return entry[len(key)+1:]
		}
	}
	return ""
}

func (ctx *testContext) environ() []string {
	return ctx.env
}

func (ctx *testContext) getwd() string {
	return ctx.tempDir
}

func (ctx *testContext) goos() string {
	return ctx.hostOS
}

func (ctx *testContext) stdout() io.Writer {
	return &ctx.stdoutBuffer
}

func (ctx *testContext) stderr() io.Writer {
	return &ctx.stderrBuffer
}

func (ctx *testContext) run(cmd *command, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	ctx.cmds = append(ctx.cmds, cmd)
	if ctx.cmdMock != nil {
		return ctx.cmdMock(cmd, stdout, stderr)
	}
	return nil
}

// Records the command instead of replacing the test process.
func (ctx *testContext) exec(cmd *command) error {
	ctx.cmds = append(ctx.cmds, cmd)
	ctx.execCmd = cmd
	if ctx.cmdMock != nil {
		return ctx.cmdMock(cmd, ctx.stdout(), ctx.stderr())
	}
	return nil
}

func (ctx *testContext) must(exitCode int) *command {
	if exitCode != 0 {
		ctx.t.Fatalf("expected no error, but got exit code %d. Stderr: %s",
			exitCode, ctx.stderrBuffer.String())
	}
	if ctx.execCmd == nil {
		ctx.t.Fatalf("expected a command to be executed. Stderr: %s", ctx.stderrBuffer.String())
	}
	return ctx.execCmd
}

func (ctx *testContext) mustFail(exitCode int) string {
	if exitCode == 0 {
		ctx.t.Fatalf("expected an error, but got exit code 0")
	}
	if ctx.execCmd != nil {
		ctx.t.Fatalf("expected no command to be executed. Got: %#v", ctx.execCmd)
	}
	return ctx.stderrBuffer.String()
}

func (ctx *testContext) stdoutString() string {
	return ctx.stdoutBuffer.String()
}

func (ctx *testContext) stderrString() string {
	return ctx.stderrBuffer.String()
}

// Root of the checkout for a wrapper at wrapperPath and the default config.
func (ctx *testContext) rootPath() string {
	return ctx.tempDir
}

func (ctx *testContext) newCommand(args ...string) *command {
	// Create an empty wrapper at the given path.
	// Needed as we are resolving symlinks which stats the wrapper file.
	ctx.writeFile(wrapperPath, "")
	return &command{
		path: wrapperPath,
		args: args,
	}
}

func (ctx *testContext) writeFile(fullFileName string, fileContent string) {
	ctx.writeFileWithMode(fullFileName, fileContent, 0777)
}

func (ctx *testContext) writeFileWithMode(fullFileName string, fileContent string, mode os.FileMode) {
	if !filepath.IsAbs(fullFileName) {
		fullFileName = filepath.Join(ctx.tempDir, fullFileName)
	}
	if err := os.MkdirAll(filepath.Dir(fullFileName), 0777); err != nil {
		ctx.t.Fatal(err)
	}
	if err := os.WriteFile(fullFileName, []byte(fileContent), mode); err != nil {
		ctx.t.Fatal(err)
	}
	if err := os.Chmod(fullFileName, mode); err != nil {
		ctx.t.Fatal(err)
	}
}

func (ctx *testContext) symlink(oldname string, newname string) {
	if err := os.MkdirAll(filepath.Dir(newname), 0777); err != nil {
		ctx.t.Fatal(err)
	}
	if err := os.Symlink(oldname, newname); err != nil {
		ctx.t.Fatal(err)
	}
}

func verifyPath(cmd *command, expectedRegex string) error {
	compiledRegex := regexp.MustCompile(matchFullString(expectedRegex))
	if !compiledRegex.MatchString(cmd.path) {
		return fmt.Errorf("path does not match %s. Actual %s", expectedRegex, cmd.path)
	}
	return nil
}

func verifyArgv0(cmd *command, expected string) error {
	if actual := cmd.argv()[0]; actual != expected {
		return fmt.Errorf("argv0 does not match. Expected %q. Actual %q", expected, actual)
	}
	return nil
}

func verifyArgs(cmd *command, expected ...string) error {
	if diff := cmp.Diff(expected, cmd.args, cmpopts.EquateEmpty()); diff != "" {
		return fmt.Errorf("args mismatch (-want +got):\n%s", diff)
	}
	return nil
}

func verifyArgCount(cmd *command, expectedCount int, expectedRegex string) error {
	compiledRegex := regexp.MustCompile(matchFullString(expectedRegex))
	count := 0
	for _, arg := range cmd.args {
		if compiledRegex.MatchString(arg) {
			count++
		}
	}
	if count != expectedCount {
		return fmt.Errorf("expected %d matches for arg %s. All args: %s",
			expectedCount, expectedRegex, cmd.args)
	}
	return nil
}

func verifyArgOrder(cmd *command, expectedRegexes ...string) error {
	compiledRegexes := []*regexp.Regexp{}
	for _, regex := range expectedRegexes {
		compiledRegexes = append(compiledRegexes, regexp.MustCompile(matchFullString(regex)))
	}
	expectedArgIndex := 0
	for _, arg := range cmd.args {
		if expectedArgIndex == len(compiledRegexes) {
			break
		} else if compiledRegexes[expectedArgIndex].MatchString(arg) {
			expectedArgIndex++
		}
	}
	if expectedArgIndex != len(expectedRegexes) {
		return fmt.Errorf("expected args %s in order. All args: %s",
			expectedRegexes, cmd.args)
	}
	return nil
}

func matchFullString(regex string) string {
	return "^" + regex + "$"
}
