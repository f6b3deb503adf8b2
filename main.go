// Copyright (c) 2015, the Dartino project authors.  Please see the AUTHORS file
// for details. All rights reserved. Use of this source code is governed by a
// BSD-style license that can be found in the LICENSE file.

// cc_wrapper is the C/C++ compiler used by the Dartino build files. It picks
// the real compiler from sentinel flags on the command line and execs it.
//
// Sentinels (both the -D and the -L/ form are accepted):
// - -DDARTINO_CLANG: bundled clang in third_party/clang.
// - -DDARTINO_ARM, -DDARTINO_ARM64: gcc 4.8 cross compilers in /usr/bin.
// - -DGCC_XARM_EMBEDDED: gcc-arm-embedded in third_party.
// - -DGCC_XARM_LOCAL: arm-eabi-gcc or arm-none-eabi-gcc from PATH.
// - none of the above: /usr/bin/gcc.
// -L/DARTINO_ASAN enables ASan and UBSan (trap on error).
//
// Environment:
// - DARTINO_TOOLCHAIN: select the toolchain explicitly (clang, gcc, arm,
//   arm64, arm-embedded, arm-local). Takes precedence over sentinels.
// - DARTINO_ASAN: enable the sanitizers if set to a true value.
// - DARTINO_CC_WRAPPER_CONFIG: YAML file overriding the built-in config.
//   See config.go for the supported keys.
//
// Linker variables:
// - main.RootRelPath: checkout root relative to the wrapper binary.
//   Defaults to "..", i.e. the wrapper lives in <root>/tools.
//
// Pass -print-cmdline to print the final command to stderr.
package main

import (
	"log"
	"os"
)

func main() {
	env, err := newProcessEnv()
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := getRealConfig(env)
	if err != nil {
		log.Fatal(err)
	}
	// Note: callCompiler will exec the command. Only in case of
	// an error will this os.Exit be called.
	os.Exit(callCompiler(env, cfg, newProcessCommand()))
}
