// Copyright (c) 2015, the Dartino project authors.  Please see the AUTHORS file
// for details. All rights reserved. Use of this source code is governed by a
// BSD-style license that can be found in the LICENSE file.

package main

import (
	"strings"
)

const toolchainEnvVar = "DARTINO_TOOLCHAIN"

type toolchain int32

const (
	systemGccToolchain toolchain = iota
	clangToolchain
	armGccToolchain
	arm64GccToolchain
	armEmbeddedGccToolchain
	armLocalGccToolchain
)

type toolchainSentinel struct {
	toolchain toolchain
	// Value accepted in DARTINO_TOOLCHAIN.
	name string
	// The build files pass the choice either as a define or as a library path.
	define  string
	libPath string
}

// Checked in order. The first toolchain with a sentinel on the command line wins.
var toolchainSentinels = []toolchainSentinel{
	{clangToolchain, "clang", "-DDARTINO_CLANG", "-L/DARTINO_CLANG"},
	{armGccToolchain, "arm", "-DDARTINO_ARM", "-L/DARTINO_ARM"},
	{arm64GccToolchain, "arm64", "-DDARTINO_ARM64", "-L/DARTINO_ARM64"},
	{armEmbeddedGccToolchain, "arm-embedded", "-DGCC_XARM_EMBEDDED", "-L/GCC_XARM_EMBEDDED"},
	{armLocalGccToolchain, "arm-local", "-DGCC_XARM_LOCAL", "-L/GCC_XARM_LOCAL"},
}

const systemGccToolchainName = "gcc"

// Removes the sentinels of the selected toolchain. Sentinels of other
// toolchains are left alone and reach the compiler.
func processToolchainFlags(builder *commandBuilder) (toolchain, error) {
	selected := systemGccToolchain
	for _, sentinel := range toolchainSentinels {
		if !builder.hasUserArg(sentinel.define) && !builder.hasUserArg(sentinel.libPath) {
			continue
		}
		selected = sentinel.toolchain
		builder.removeUserArgs(func(value string) bool {
			return value == sentinel.define || value == sentinel.libPath
		})
		break
	}

	if name := builder.env.getenv(toolchainEnvVar); name != "" {
		override, err := toolchainByName(name)
		if err != nil {
			return 0, err
		}
		selected = override
	}
	return selected, nil
}

func toolchainByName(name string) (toolchain, error) {
	if name == systemGccToolchainName {
		return systemGccToolchain, nil
	}
	names := []string{systemGccToolchainName}
	for _, sentinel := range toolchainSentinels {
		if sentinel.name == name {
			return sentinel.toolchain, nil
		}
		names = append(names, sentinel.name)
	}
	return 0, newUserErrorf("unknown toolchain %s=%q, expected one of: %s",
		toolchainEnvVar, name, strings.Join(names, ", "))
}
