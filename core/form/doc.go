// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form owns the state of a fixed-length form: the field values and
// which field, if any, has keyboard focus. It knows nothing about rendering;
// views drive it through Next, Previous, Done and Submit and listen for
// changes with Subscribe.
package form
