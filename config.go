// Copyright (c) 2015, the Dartino project authors.  Please see the AUTHORS file
// for details. All rights reserved. Use of this source code is governed by a
// BSD-style license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileEnvVar = "DARTINO_CC_WRAPPER_CONFIG"

type config struct {
	// Checkout root relative to the directory of the wrapper binary.
	rootRelPath string
	// Flags that replace the sanitizer sentinel. Always first on the command line.
	sanitizerFlags []string
	// Flags to add to clang only.
	clangFlags []string
	// Flags to add to the gcc family (system, cross and embedded) only.
	gccFlags []string
	systemGcc compilerBinary
	armGcc    compilerBinary
	arm64Gcc  compilerBinary
	// Compilers probed on PATH for the local ARM toolchain, in order.
	// The last entry is used without probing.
	localArmCompilers []string
	// Command that prints the macOS SDK path.
	sdkPathCommand []string
}

type compilerBinary struct {
	path  string
	argv0 string
}

// RootRelPath can be set via a linker flag.
// E.g. go build -ldflags '-X main.RootRelPath=../..'.
var RootRelPath = ".."

// Returns the built-in configuration, updated by the file named in
// DARTINO_CC_WRAPPER_CONFIG if that is set.
func getRealConfig(env env) (*config, error) {
	cfg := getDartinoConfig()
	cfg.rootRelPath = RootRelPath
	configPath := env.getenv(configFileEnvVar)
	if configPath == "" {
		return cfg, nil
	}
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(env.getwd(), configPath)
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, newUserErrorf("failed to read %s: %s", configFileEnvVar, err)
	}
	if err := cfg.applyConfigFile(data); err != nil {
		return nil, newUserErrorf("invalid config %s: %s", configPath, err)
	}
	return cfg, nil
}

func getDartinoConfig() *config {
	return &config{
		rootRelPath: "..",
		sanitizerFlags: []string{
			"-fsanitize=address",
			"-fsanitize-undefined-trap-on-error",
		},
		systemGcc: compilerBinary{
			path:  "/usr/bin/gcc",
			argv0: "gcc",
		},
		armGcc: compilerBinary{
			path:  "/usr/bin/arm-linux-gnueabihf-gcc-4.8",
			argv0: "arm-linux-gnueabihf-gcc-4.8",
		},
		arm64Gcc: compilerBinary{
			path:  "/usr/bin/aarch64-linux-gnu-gcc-4.8",
			argv0: "aarch64-linux-gnu-gcc-4.8",
		},
		localArmCompilers: []string{"arm-eabi-gcc", "arm-none-eabi-gcc"},
		sdkPathCommand:    []string{"xcrun", "--show-sdk-path"},
	}
}

type configFile struct {
	RootRelPath       *string             `yaml:"root_rel_path"`
	SanitizerFlags    []string            `yaml:"sanitizer_flags"`
	ClangFlags        []string            `yaml:"clang_flags"`
	GccFlags          []string            `yaml:"gcc_flags"`
	SystemGcc         *compilerBinaryFile `yaml:"system_gcc"`
	ArmGcc            *compilerBinaryFile `yaml:"arm_gcc"`
	Arm64Gcc          *compilerBinaryFile `yaml:"arm64_gcc"`
	LocalArmCompilers []string            `yaml:"local_arm_compilers"`
	SdkPathCommand    []string            `yaml:"sdk_path_command"`
}

type compilerBinaryFile struct {
	Path  string `yaml:"path"`
	Argv0 string `yaml:"argv0"`
}

// Only keys present in the file override the current values.
func (cfg *config) applyConfigFile(data []byte) error {
	var file configFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if file.RootRelPath != nil {
		cfg.rootRelPath = *file.RootRelPath
	}
	if file.SanitizerFlags != nil {
		cfg.sanitizerFlags = file.SanitizerFlags
	}
	if file.ClangFlags != nil {
		cfg.clangFlags = file.ClangFlags
	}
	if file.GccFlags != nil {
		cfg.gccFlags = file.GccFlags
	}
	for _, binary := range []struct {
		name string
		in   *compilerBinaryFile
		out  *compilerBinary
	}{
		{"system_gcc", file.SystemGcc, &cfg.systemGcc},
		{"arm_gcc", file.ArmGcc, &cfg.armGcc},
		{"arm64_gcc", file.Arm64Gcc, &cfg.arm64Gcc},
	} {
		if binary.in == nil {
			continue
		}
		if binary.in.Path == "" {
			return errors.New(binary.name + ": path must not be empty")
		}
		argv0 := binary.in.Argv0
		if argv0 == "" {
			argv0 = filepath.Base(binary.in.Path)
		}
		*binary.out = compilerBinary{path: binary.in.Path, argv0: argv0}
	}
	if file.LocalArmCompilers != nil {
		if len(file.LocalArmCompilers) == 0 {
			return errors.New("local_arm_compilers must not be empty")
		}
		cfg.localArmCompilers = file.LocalArmCompilers
	}
	if file.SdkPathCommand != nil {
		if len(file.SdkPathCommand) == 0 {
			return errors.New("sdk_path_command must not be empty")
		}
		cfg.sdkPathCommand = file.SdkPathCommand
	}
	return nil
}
