// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toeirei/quadshift/internal/cipher"
)

func TestClassify_Letters(t *testing.T) {
	cases := map[cipher.Quadrant]string{
		cipher.LowerFirstHalf:  "abcdefghijklm",
		cipher.LowerSecondHalf: "nopqrstuvwxyz",
		cipher.UpperFirstHalf:  "ABCDEFGHIJKLM",
		cipher.UpperSecondHalf: "NOPQRSTUVWXYZ",
	}
	for q, letters := range cases {
		assert.Len(t, letters, cipher.HalfRange, "quadrant %s", q)
		for _, r := range letters {
			assert.Equal(t, q, cipher.Classify(r), "letter %q", r)
			assert.True(t, q.Contains(r))
		}
		assert.Equal(t, rune(letters[0]), q.Base(), "base of %s", q)
	}
}

func TestClassify_NonLetters(t *testing.T) {
	for _, r := range []rune{'@', '[', '`', '{', '0', ' ', '\n', 'é', 'Ω', 'ß', '中', 0, -1, 0x10FFFF} {
		assert.Equal(t, cipher.NonLetter, cipher.Classify(r), "rune %U", r)
	}
	assert.Equal(t, rune(0), cipher.NonLetter.Base())
	assert.False(t, cipher.NonLetter.Contains('!'))
}

func TestQuadrant_String(t *testing.T) {
	assert.Equal(t, "a-m", cipher.LowerFirstHalf.String())
	assert.Equal(t, "N-Z", cipher.UpperSecondHalf.String())
	assert.Equal(t, "non-letter", cipher.NonLetter.String())
}
