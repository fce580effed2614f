// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders loads GLSL shader sources from disk and
// watches them for changes. It also contains the default
// vertex and fragment shaders used by the triangle command.
package shaders

import (
	"os"

	"cogentcore.org/core/base/errors"
)

// LoadSource returns the entire contents of the file at path as text.
// If the file cannot be read the error is logged and an empty string
// is returned; there is no separate error signal, so the failure
// surfaces as a compile error of the empty source.
func LoadSource(path string) string {
	return string(errors.Log1(os.ReadFile(path)))
}
