// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

// Quadrant identifies the 13-letter half-range a character belongs to.
type Quadrant int

const (
	LowerFirstHalf  Quadrant = iota // a-m
	LowerSecondHalf                 // n-z
	UpperFirstHalf                  // A-M
	UpperSecondHalf                 // N-Z
	NonLetter
)

// Quadrants lists the four letter quadrants in table order.
var Quadrants = [...]Quadrant{LowerFirstHalf, LowerSecondHalf, UpperFirstHalf, UpperSecondHalf}

// Classify returns the quadrant of r. Every rune outside A-Z and a-z is NonLetter.
func Classify(r rune) Quadrant {
	switch {
	case r >= 'a' && r <= 'm':
		return LowerFirstHalf
	case r >= 'n' && r <= 'z':
		return LowerSecondHalf
	case r >= 'A' && r <= 'M':
		return UpperFirstHalf
	case r >= 'N' && r <= 'Z':
		return UpperSecondHalf
	default:
		return NonLetter
	}
}

// Base returns the first letter of the quadrant, or 0 for NonLetter.
func (q Quadrant) Base() rune {
	switch q {
	case LowerFirstHalf:
		return 'a'
	case LowerSecondHalf:
		return 'n'
	case UpperFirstHalf:
		return 'A'
	case UpperSecondHalf:
		return 'N'
	default:
		return 0
	}
}

// Contains reports whether r lies inside the quadrant's letter range.
func (q Quadrant) Contains(r rune) bool {
	return q != NonLetter && Classify(r) == q
}

func (q Quadrant) String() string {
	switch q {
	case LowerFirstHalf:
		return "a-m"
	case LowerSecondHalf:
		return "n-z"
	case UpperFirstHalf:
		return "A-M"
	case UpperSecondHalf:
		return "N-Z"
	default:
		return "non-letter"
	}
}
