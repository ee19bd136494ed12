// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

// HalfRange is the number of letters in each quadrant.
const HalfRange = 13

// Mod reduces x into [0, HalfRange) for any sign of x.
func Mod(x int) int {
	return (x%HalfRange + HalfRange) % HalfRange
}

// Shift rotates r by shift positions inside the quadrant starting at base.
// r must lie within HalfRange letters of base.
func Shift(r rune, shift int, base rune) rune {
	offset := Mod(int(r-base) + Mod(shift))
	return base + rune(offset)
}
