// Copyright (c) 2015, the Dartino project authors.  Please see the AUTHORS file
// for details. All rights reserved. Use of this source code is governed by a
// BSD-style license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
)

const toolchainErrorBanner = "*************** TOOLCHAIN ERROR ********************"

func calcArmEmbeddedGccCommand(builder *commandBuilder) (*command, error) {
	if builder.hostOS == macOSName {
		// gyp always passes '-arch x86_64' and '-mpascal-strings' on Mac.
		// arm-none-eabi-gcc rejects both.
		builder.removeFirstUserArg("-arch")
		builder.removeFirstUserArg("x86_64")
		builder.removeFirstUserArg("-mpascal-strings")
	}

	embeddedDir := filepath.Join(builder.rootPath, "third_party", "gcc-arm-embedded")
	gccPath := filepath.Join(embeddedDir, builder.hostOS, "gcc-arm-embedded", "bin", "arm-none-eabi-gcc")
	if _, err := os.Stat(gccPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, newMissingToolchainError(gccPath, filepath.Join(embeddedDir, "download"))
		}
		return nil, wrapErrorwithSourceLocf(err, "failed to stat %s", gccPath)
	}

	builder.setCompiler(gccPath, gccPath)
	builder.addPreUserArgs(builder.cfg.gccFlags...)
	return builder.build(), nil
}

func newMissingToolchainError(compilerPath string, downloadPath string) userError {
	return newUserErrorf("\n%s\n%s not found\nRun %s to download\n",
		toolchainErrorBanner, compilerPath, downloadPath)
}
