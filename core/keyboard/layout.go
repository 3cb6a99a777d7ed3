// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package keyboard

import "slices"

var layouts = map[Type][][]string{
	Default: {
		{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"},
		{"a", "s", "d", "f", "g", "h", "j", "k", "l"},
		{"⇧", "z", "x", "c", "v", "b", "n", "m", "⌫"},
		{"123", "space", "return"},
	},
	NumberPad: {
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
		{"", "0", "⌫"},
	},
	DecimalPad: {
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
		{".", "0", "⌫"},
	},
	EmailAddress: {
		{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"},
		{"a", "s", "d", "f", "g", "h", "j", "k", "l"},
		{"⇧", "z", "x", "c", "v", "b", "n", "m", "⌫"},
		{"123", "space", "@", ".", "return"},
	},
	NamePhonePad: {
		{"1", "2 abc", "3 def"},
		{"4 ghi", "5 jkl", "6 mno"},
		{"7 pqrs", "8 tuv", "9 wxyz"},
		{"abc", "0", "⌫"},
	},
	NumbersAndPunctuation: {
		{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"},
		{"-", "/", ":", ";", "(", ")", "$", "&", "@", "\""},
		{"#+=", ".", ",", "?", "!", "'", "⌫"},
		{"ABC", "space", "return"},
	},
	WebSearch: {
		{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"},
		{"a", "s", "d", "f", "g", "h", "j", "k", "l"},
		{"⇧", "z", "x", "c", "v", "b", "n", "m", "⌫"},
		{"123", "space", ".", "go"},
	},
}

// Layout returns the rows of key caps shown for t. Unknown types get the
// Default layout. The result is a copy and may be modified.
func Layout(t Type) [][]string {
	rows, ok := layouts[t]
	if !ok {
		rows = layouts[Default]
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = slices.Clone(row)
	}
	return out
}
