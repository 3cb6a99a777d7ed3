// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package notify

import (
	"testing"
)

func TestCenter_PostDeliversInSubscriptionOrder(t *testing.T) {
	c := NewCenter()
	var got []string

	c.Subscribe(KeyboardWillShow, func(Notification) { got = append(got, "first") })
	c.Subscribe(KeyboardWillShow, func(Notification) { got = append(got, "second") })
	c.Subscribe(KeyboardWillHide, func(Notification) { got = append(got, "hide") })

	c.Post(KeyboardWillShowNotification(Rect{Height: 10}))

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("unexpected delivery order: %v", got)
	}
}

func TestCenter_PayloadIsPassedThrough(t *testing.T) {
	c := NewCenter()
	var frame Rect
	c.Subscribe(KeyboardWillShow, func(n Notification) {
		frame, _ = n.UserInfo[KeyboardFrameEndKey].(Rect)
	})

	c.Post(KeyboardWillShowNotification(Rect{Width: 80, Height: 291}))

	if frame.Height != 291 || frame.Width != 80 {
		t.Fatalf("unexpected frame: %+v", frame)
	}
}

func TestSubscription_CancelIsIdempotent(t *testing.T) {
	c := NewCenter()
	calls := 0
	sub := c.Subscribe(KeyboardWillHide, func(Notification) { calls++ })
	other := c.Subscribe(KeyboardWillHide, func(Notification) {})

	sub.Cancel()
	sub.Cancel()

	c.Post(KeyboardWillHideNotification())
	if calls != 0 {
		t.Fatalf("cancelled handler was called %d times", calls)
	}
	if n := c.Subscribers(KeyboardWillHide); n != 1 {
		t.Fatalf("expected 1 remaining subscriber, got %d", n)
	}

	other.Cancel()
	if n := c.Subscribers(KeyboardWillHide); n != 0 {
		t.Fatalf("expected no subscribers, got %d", n)
	}

	var nilSub *Subscription
	nilSub.Cancel()
}

func TestCenter_HandlerMaySubscribeDuringPost(t *testing.T) {
	c := NewCenter()
	late := 0
	c.Subscribe(KeyboardDidShow, func(Notification) {
		c.Subscribe(KeyboardDidShow, func(Notification) { late++ })
	})

	c.Post(Notification{Name: KeyboardDidShow})
	if late != 0 {
		t.Fatalf("handler added during post must not see the same notification")
	}

	c.Post(Notification{Name: KeyboardDidShow})
	if late != 1 {
		t.Fatalf("expected late handler to run once, ran %d", late)
	}
}

func TestDefault_ReturnsSameCenter(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("Default should return a single process-wide center")
	}
}
