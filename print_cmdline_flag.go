// Copyright (c) 2015, the Dartino project authors.  Please see the AUTHORS file
// for details. All rights reserved. Use of this source code is governed by a
// BSD-style license that can be found in the LICENSE file.

package main

func processPrintCmdlineFlag(builder *commandBuilder) {
	printCmd := builder.removeUserArgs(func(value string) bool {
		return value == "-print-cmdline"
	})
	if printCmd {
		builder.env = &printingEnv{builder.env}
	}
}
