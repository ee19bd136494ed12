// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core contains deterministic, UI-agnostic operations used by the
// CLI. Functions read and write text through internal/textio, run the
// cipher from internal/cipher and report runs through the small interfaces
// in interfaces.go. Nothing here prints or prompts; the history store is
// injected by the caller.
package core
