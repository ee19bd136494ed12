// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Quadshift using Cobra.
// It wires configuration, default services, and provides commands that delegate
// to the deterministic `core` operations. CLI code should remain thin: it
// resolves parameters, prints localized messages and maps errors.
package cli
