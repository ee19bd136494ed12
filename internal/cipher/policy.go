// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"fmt"
	"strings"
)

// Direction selects the encrypt or decrypt column of the shift table.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// Opposite returns the inverse direction.
func (d Direction) Opposite() Direction {
	if d == Decrypt {
		return Encrypt
	}
	return Decrypt
}

// ParseDirection accepts "encrypt"/"enc"/"e" and "decrypt"/"dec"/"d", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt", "enc", "e":
		return Encrypt, nil
	case "decrypt", "dec", "d":
		return Decrypt, nil
	}
	return Encrypt, fmt.Errorf("unknown direction %q", s)
}

// Params is the (n, m) key pair. Any int values are valid.
type Params struct {
	N int
	M int
}

func (p Params) String() string {
	return fmt.Sprintf("n=%d m=%d", p.N, p.M)
}

// encryptShift holds the encrypt amount per letter quadrant. Operands are
// reduced mod 13 first so products cannot overflow; the result stays
// congruent to the plain formula.
var encryptShift = [...]func(n, m int) int{
	LowerFirstHalf:  func(n, m int) int { return n * m },
	LowerSecondHalf: func(n, m int) int { return -(n + m) },
	UpperFirstHalf:  func(n, m int) int { return -n },
	UpperSecondHalf: func(n, m int) int { return m * m },
}

// ShiftAmount returns the rotation applied to letters of quadrant q,
// reduced into [0, 13). NonLetter always yields 0.
func ShiftAmount(q Quadrant, p Params, d Direction) int {
	if q < LowerFirstHalf || q >= NonLetter {
		return 0
	}
	amount := Mod(encryptShift[q](Mod(p.N), Mod(p.M)))
	if d == Decrypt {
		amount = Mod(-amount)
	}
	return amount
}

// Apply maps a single rune through the cipher.
func Apply(r rune, p Params, d Direction) rune {
	q := Classify(r)
	if q == NonLetter {
		return r
	}
	return Shift(r, ShiftAmount(q, p, d), q.Base())
}

// Key is the cipher policy for one (Params, Direction) pair expanded into a
// byte translation table. Bytes >= 0x80 map to themselves.
type Key struct {
	params Params
	dir    Direction
	table  [256]byte
}

// NewKey precomputes the translation table for p and d.
func NewKey(p Params, d Direction) *Key {
	k := &Key{params: p, dir: d}
	for i := range k.table {
		b := byte(i)
		if b < 0x80 {
			b = byte(Apply(rune(b), p, d))
		}
		k.table[i] = b
	}
	return k
}

// MapByte translates one byte.
func (k *Key) MapByte(b byte) byte { return k.table[b] }

// Params returns the parameters the key was built from.
func (k *Key) Params() Params { return k.params }

// Direction returns the direction the key was built for.
func (k *Key) Direction() Direction { return k.dir }

// Inverse returns the key that undoes k.
func (k *Key) Inverse() *Key {
	return NewKey(k.params, k.dir.Opposite())
}
