// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package notify

import (
	"slices"
	"sync"
)

type Handler = func(Notification)

type Center struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[Name][]subscriber
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Subscription is returned by Center.Subscribe. Cancel removes the handler;
// calling it more than once is harmless.
type Subscription struct {
	once   sync.Once
	cancel func()
}

func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

func NewCenter() *Center {
	return &Center{subs: make(map[Name][]subscriber)}
}

var defaultCenter = NewCenter()

// Default returns the process-wide center.
func Default() *Center {
	return defaultCenter
}

func (c *Center) Subscribe(name Name, handler Handler) *Subscription {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.subs[name] = append(c.subs[name], subscriber{id: id, handler: handler})
	c.mu.Unlock()

	return &Subscription{cancel: func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.subs[name] = slices.DeleteFunc(slices.Clone(c.subs[name]), func(s subscriber) bool {
			return s.id == id
		})
		if len(c.subs[name]) == 0 {
			delete(c.subs, name)
		}
	}}
}

// Post delivers n to every handler subscribed to n.Name, in subscription
// order. Handlers run synchronously on the caller's goroutine; the lock is
// not held while they run, so a handler may subscribe or cancel.
func (c *Center) Post(n Notification) {
	c.mu.Lock()
	subs := c.subs[n.Name]
	c.mu.Unlock()

	for _, s := range subs {
		s.handler(n)
	}
}

// Subscribers reports how many handlers are registered for name.
func (c *Center) Subscribers(name Name) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs[name])
}
