// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyboard describes the on-screen keyboard: the input modes a field
// can request, the per-field mode table, the key layout of each mode and an
// observer that tracks how tall the keyboard currently is.
package keyboard
