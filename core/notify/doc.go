// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package notify is a small in-process notification center. It plays the
// role of the host platform's notification stream: producers post named
// notifications with an optional payload and any number of subscribers
// receive them in post order.
package notify
