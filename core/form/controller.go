// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"errors"
	"fmt"
	"slices"

	"github.com/toeirei/keynav/core/keyboard"
	"github.com/toeirei/keynav/internal/logging"
)

var (
	ErrNoFields        = errors.New("form needs at least one field")
	ErrFieldOutOfRange = errors.New("field index out of range")
)

// PreviousMode selects how Previous treats the first field.
type PreviousMode int

const (
	// PreviousClamp stops at the first field.
	PreviousClamp PreviousMode = iota
	// PreviousLegacy clamps against the last field only, so Previous on the
	// first field moves focus to -1. Focus then refers to no field until
	// Done or FocusField is called.
	PreviousLegacy
)

// Change describes one mutation. Index is the edited field for value
// changes and -1 for pure focus changes.
type Change struct {
	From  Focus
	To    Focus
	Index int
}

type Controller struct {
	fields       []string
	focus        Focus
	table        keyboard.Table
	previousMode PreviousMode
	onSubmit     func(index int, value string)

	nextSubID   int
	subscribers []subscriber
}

type subscriber struct {
	id int
	fn func(Change)
}

type Opt = func(c *Controller)

// WithKeyboardTable replaces the default index to keyboard type table.
func WithKeyboardTable(table keyboard.Table) Opt {
	return func(c *Controller) {
		c.table = table
	}
}

func WithPreviousMode(mode PreviousMode) Opt {
	return func(c *Controller) {
		c.previousMode = mode
	}
}

func WithLegacyPrevious() Opt {
	return WithPreviousMode(PreviousLegacy)
}

// WithOnSubmit installs the hook Submit calls.
func WithOnSubmit(fn func(index int, value string)) Opt {
	return func(c *Controller) {
		c.onSubmit = fn
	}
}

// New creates a controller with n empty fields and nothing focused.
func New(n int, opts ...Opt) (*Controller, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoFields, n)
	}
	c := &Controller{
		fields: make([]string, n),
		table:  keyboard.DefaultTable(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Controller) Len() int { return len(c.fields) }

func (c *Controller) lastIndex() int { return len(c.fields) - 1 }

func (c *Controller) inRange(i int) bool { return i >= 0 && i <= c.lastIndex() }

// Focus returns the raw selector. In legacy mode it may hold an index that
// refers to no field; use Focused for the usable value.
func (c *Controller) Focus() Focus { return c.focus }

// Focused reports the focused field. It is false when nothing is focused or
// the selector is out of range.
func (c *Controller) Focused() (int, bool) {
	if !c.focus.Set || !c.inRange(c.focus.Index) {
		return 0, false
	}
	return c.focus.Index, true
}

// FocusField moves focus straight to field i, as a tap on the field would.
func (c *Controller) FocusField(i int) error {
	if !c.inRange(i) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrFieldOutOfRange, i, c.lastIndex())
	}
	c.setFocus(FieldFocus(i))
	return nil
}

// Next moves to the following field and stays on the last one.
func (c *Controller) Next() {
	current, ok := c.Focused()
	if !ok {
		return
	}
	c.setFocus(FieldFocus(min(current+1, c.lastIndex())))
}

// Previous moves to the preceding field. See PreviousMode for the behaviour
// on the first field.
func (c *Controller) Previous() {
	current, ok := c.Focused()
	if !ok {
		return
	}
	switch c.previousMode {
	case PreviousLegacy:
		c.setFocus(FieldFocus(min(current-1, c.lastIndex())))
	default:
		c.setFocus(FieldFocus(max(current-1, 0)))
	}
}

// Done clears focus, which dismisses the keyboard.
func (c *Controller) Done() {
	c.setFocus(NoFocus())
}

func (c *Controller) IsAtFirst() bool {
	current, ok := c.Focused()
	return ok && current == 0
}

func (c *Controller) IsAtLast() bool {
	current, ok := c.Focused()
	return ok && current == c.lastIndex()
}

// KeyboardType is a pure lookup; every index has an answer.
func (c *Controller) KeyboardType(index int) keyboard.Type {
	return c.table.Lookup(index)
}

// FocusedKeyboardType is the keyboard to show right now, Default when
// nothing is focused.
func (c *Controller) FocusedKeyboardType() keyboard.Type {
	if current, ok := c.Focused(); ok {
		return c.KeyboardType(current)
	}
	return keyboard.Default
}

// Submit is called when the input of field index is committed, e.g. with
// the return key. It performs no validation and does not move focus.
func (c *Controller) Submit(index int) {
	logging.Debugf("submit from field %d", index)
	if c.onSubmit == nil || !c.inRange(index) {
		return
	}
	c.onSubmit(index, c.fields[index])
}

func (c *Controller) Value(i int) (string, error) {
	if !c.inRange(i) {
		return "", fmt.Errorf("%w: %d", ErrFieldOutOfRange, i)
	}
	return c.fields[i], nil
}

func (c *Controller) SetValue(i int, value string) error {
	if !c.inRange(i) {
		return fmt.Errorf("%w: %d", ErrFieldOutOfRange, i)
	}
	if c.fields[i] == value {
		return nil
	}
	c.fields[i] = value
	c.notify(Change{From: c.focus, To: c.focus, Index: i})
	return nil
}

// Values returns a copy of all field values.
func (c *Controller) Values() []string {
	return slices.Clone(c.fields)
}

// Subscribe registers fn for every change. Callbacks run synchronously after
// the mutation, in subscription order.
func (c *Controller) Subscribe(fn func(Change)) (cancel func()) {
	c.nextSubID++
	id := c.nextSubID
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})
	return func() {
		c.subscribers = slices.DeleteFunc(slices.Clone(c.subscribers), func(s subscriber) bool {
			return s.id == id
		})
	}
}

func (c *Controller) setFocus(to Focus) {
	from := c.focus
	if from == to {
		return
	}
	c.focus = to
	logging.Debugf("focus %s -> %s", from, to)
	c.notify(Change{From: from, To: to, Index: -1})
}

func (c *Controller) notify(change Change) {
	for _, s := range c.subscribers {
		s.fn(change)
	}
}
