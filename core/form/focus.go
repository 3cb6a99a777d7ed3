// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import "strconv"

// Focus is either "no field focused" (the zero value) or "field Index
// focused".
type Focus struct {
	Index int
	Set   bool
}

func NoFocus() Focus { return Focus{} }

func FieldFocus(index int) Focus { return Focus{Index: index, Set: true} }

func (f Focus) String() string {
	if !f.Set {
		return "none"
	}
	return "field " + strconv.Itoa(f.Index)
}
