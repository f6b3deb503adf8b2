// Copyright (c) 2015, the Dartino project authors.  Please see the AUTHORS file
// for details. All rights reserved. Use of this source code is governed by a
// BSD-style license that can be found in the LICENSE file.

package main

// Used for the system gcc and the ARM/ARM64 cross compilers, which are all
// installed at fixed paths.
func calcGccCommand(builder *commandBuilder, gcc compilerBinary) *command {
	builder.setCompiler(gcc.path, gcc.argv0)
	builder.addPreUserArgs(builder.cfg.gccFlags...)
	return builder.build()
}
