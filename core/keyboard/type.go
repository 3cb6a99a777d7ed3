// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package keyboard

import (
	"errors"
	"fmt"
	"strings"
)

type Type int

const (
	Default Type = iota
	NumberPad
	DecimalPad
	EmailAddress
	NamePhonePad
	NumbersAndPunctuation
	WebSearch
)

var ErrUnknownType = errors.New("unknown keyboard type")

var typeNames = [...]string{
	Default:               "default",
	NumberPad:             "numeric",
	DecimalPad:            "decimal",
	EmailAddress:          "email",
	NamePhonePad:          "name-phone",
	NumbersAndPunctuation: "numbers-and-punctuation",
	WebSearch:             "web-search",
}

// Types lists every keyboard type in declaration order.
func Types() []Type {
	return []Type{Default, NumberPad, DecimalPad, EmailAddress, NamePhonePad, NumbersAndPunctuation, WebSearch}
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownType, name)
}
