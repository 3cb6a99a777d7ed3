// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package keyboard

import (
	"fmt"
	"maps"
	"strconv"

	"github.com/toeirei/keynav/util/mapst"
)

// Table maps field indices to the keyboard they request. Indices that are
// not present use Default.
type Table map[int]Type

// DefaultTable is the stock mapping. Indices 11 and 13 are outside a ten
// field form and only take effect on longer forms.
func DefaultTable() Table {
	return Table{
		2:  NumberPad,
		3:  DecimalPad,
		5:  EmailAddress,
		7:  NamePhonePad,
		11: NumbersAndPunctuation,
		13: WebSearch,
	}
}

// Lookup never fails; unknown indices, negative ones included, map to Default.
func (t Table) Lookup(index int) Type {
	if kt, ok := t[index]; ok {
		return kt
	}
	return Default
}

// Merge returns a copy of t with every entry of overrides applied on top.
func (t Table) Merge(overrides Table) Table {
	merged := maps.Clone(t)
	if merged == nil {
		merged = Table{}
	}
	maps.Copy(merged, overrides)
	return merged
}

// ParseTable converts config entries ("index" -> "type name") into a Table.
// Entries are checked in key order so the reported error is stable.
func ParseTable(entries map[string]string) (Table, error) {
	return mapst.ReduceX(entries, make(Table, len(entries)), func(rawIndex, rawType string, table Table) (Table, error) {
		index, err := strconv.Atoi(rawIndex)
		if err != nil || index < 0 {
			return nil, fmt.Errorf("keyboard table entry %q: field index must be a non-negative integer", rawIndex)
		}
		kt, err := ParseType(rawType)
		if err != nil {
			return nil, fmt.Errorf("keyboard table entry %q: %w", rawIndex, err)
		}
		table[index] = kt
		return table, nil
	})
}
