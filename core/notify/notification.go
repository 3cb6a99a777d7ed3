// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package notify

type Name string

const (
	KeyboardWillShow Name = "keyboard.will_show"
	KeyboardDidShow  Name = "keyboard.did_show"
	KeyboardWillHide Name = "keyboard.will_hide"
	KeyboardDidHide  Name = "keyboard.did_hide"
)

// KeyboardFrameEndKey holds the Rect the keyboard will occupy once its
// show animation has finished.
const KeyboardFrameEndKey = "keyboard.frame_end"

type Notification struct {
	Name     Name
	UserInfo map[string]any
}

type Rect struct {
	X, Y          float64
	Width, Height float64
}

// KeyboardWillShowNotification builds the notification posted right before
// the keyboard is shown with the given end frame.
func KeyboardWillShowNotification(frame Rect) Notification {
	return Notification{
		Name:     KeyboardWillShow,
		UserInfo: map[string]any{KeyboardFrameEndKey: frame},
	}
}

func KeyboardWillHideNotification() Notification {
	return Notification{Name: KeyboardWillHide}
}
