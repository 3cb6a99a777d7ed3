// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package mapst holds generic map helpers for config and table handling.
package mapst

import (
	"cmp"
	"slices"
)

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any, M ~map[K]V](m M) []K {
	result := make([]K, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	slices.Sort(result)
	return result
}

// ReduceX folds m into init in ascending key order and stops at the first
// error, returning the zero value with it.
func ReduceX[K cmp.Ordered, V any, M ~map[K]V, R any](m M, init R, fn func(K, V, R) (R, error)) (R, error) {
	result := init
	for _, k := range SortedKeys(m) {
		var err error
		result, err = fn(k, m[k], result)
		if err != nil {
			var zero R
			return zero, err
		}
	}
	return result, nil
}
