// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package keyboard

import (
	"sync"

	"github.com/toeirei/keynav/core/notify"
	"github.com/toeirei/keynav/internal/logging"
)

// HeightObserver follows keyboard show/hide notifications and republishes the
// keyboard height. Zero means the keyboard is not visible.
type HeightObserver struct {
	mu        sync.RWMutex
	height    float64
	closed    bool
	nextID    int
	observers map[int]func(float64)
	order     []int
	subs      []*notify.Subscription
}

func NewHeightObserver(center *notify.Center) *HeightObserver {
	o := &HeightObserver{observers: make(map[int]func(float64))}
	o.subs = []*notify.Subscription{
		center.Subscribe(notify.KeyboardWillShow, o.keyboardWillShow),
		center.Subscribe(notify.KeyboardWillHide, o.keyboardWillHide),
	}
	return o
}

func (o *HeightObserver) keyboardWillShow(n notify.Notification) {
	frame, ok := n.UserInfo[notify.KeyboardFrameEndKey].(notify.Rect)
	if !ok || frame.Height < 0 {
		logging.Debugf("keyboard will show without a usable frame, keeping height")
		return
	}
	o.set(frame.Height)
}

func (o *HeightObserver) keyboardWillHide(notify.Notification) {
	o.set(0)
}

func (o *HeightObserver) set(height float64) {
	o.mu.Lock()
	if o.closed || o.height == height {
		o.mu.Unlock()
		return
	}
	o.height = height
	observers := make([]func(float64), 0, len(o.order))
	for _, id := range o.order {
		observers = append(observers, o.observers[id])
	}
	o.mu.Unlock()

	logging.Debugf("keyboard height changed to %.0f", height)
	for _, fn := range observers {
		fn(height)
	}
}

func (o *HeightObserver) Height() float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.height
}

// Subscribe registers fn to be called with every new height. Callbacks run
// on whichever goroutine posted the notification.
func (o *HeightObserver) Subscribe(fn func(float64)) (cancel func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return func() {}
	}

	o.nextID++
	id := o.nextID
	o.observers[id] = fn
	o.order = append(o.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			delete(o.observers, id)
			for i, oid := range o.order {
				if oid == id {
					o.order = append(o.order[:i:i], o.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Close releases the notification subscriptions. No update happens after
// Close returns.
func (o *HeightObserver) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	subs := o.subs
	o.subs = nil
	o.observers = map[int]func(float64){}
	o.order = nil
	o.mu.Unlock()

	for _, sub := range subs {
		sub.Cancel()
	}
}
