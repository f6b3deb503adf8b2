// Copyright (c) 2015, the Dartino project authors.  Please see the AUTHORS file
// for details. All rights reserved. Use of this source code is governed by a
// BSD-style license that can be found in the LICENSE file.

package main

import (
	"strconv"
)

const (
	sanitizerSentinel = "-L/DARTINO_ASAN"
	sanitizerEnvVar   = "DARTINO_ASAN"
)

// Must run before any other flag is added so that the sanitizer flags end up
// first on the command line.
func processSanitizerFlags(builder *commandBuilder) error {
	useSanitizer := builder.removeUserArgs(func(value string) bool {
		return value == sanitizerSentinel
	})
	if value := builder.env.getenv(sanitizerEnvVar); value != "" {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return newUserErrorf("invalid value for %s: %q", sanitizerEnvVar, value)
		}
		useSanitizer = useSanitizer || enabled
	}
	if useSanitizer {
		builder.addPreUserArgs(builder.cfg.sanitizerFlags...)
	}
	return nil
}
