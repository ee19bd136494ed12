// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cipher implements the quadrant shift cipher.
//
// The 52 ASCII letters are split into four quadrants of 13 letters each
// (a-m, n-z, A-M, N-Z). Every quadrant rotates its letters by its own
// amount derived from the two integer parameters n and m:
//
//	a-m   n*m
//	n-z   -(n+m)
//	A-M   -n
//	N-Z   m*m
//
// Decryption applies the negated amount, so encrypting and then decrypting
// with the same parameters is the identity for every input. Anything that
// is not an ASCII letter passes through unchanged.
//
// All functions in this package are pure and safe for concurrent use.
// The cipher is a classical substitution scheme and offers no security.
package cipher
