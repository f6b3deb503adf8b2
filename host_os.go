// Copyright (c) 2015, the Dartino project authors.  Please see the AUTHORS file
// for details. All rights reserved. Use of this source code is governed by a
// BSD-style license that can be found in the LICENSE file.

package main

const macOSName = "mac"

// Maps a GOOS value to the OS name used for the directories in third_party/.
func hostOSName(goos string) string {
	switch goos {
	case "darwin":
		return macOSName
	case "windows":
		return "win32"
	default:
		return goos
	}
}
