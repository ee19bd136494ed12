// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyRoundTrip(t *testing.T) {
	cases := []struct {
		text string
		n, m int
	}{
		{"Hello, World! 123", 3, 2},
		{"", 1, 1},
		{"only letters", -7, 5},
		{"!!! ??? 123", 100, -100},
		{"Edge Case", 0, 13},
		{"Edge Case", 13, 0},
		{"Extremes", math.MaxInt, math.MinInt},
	}
	for _, tc := range cases {
		assert.True(t, VerifyRoundTrip(tc.text, tc.n, tc.m), "%q n=%d m=%d", tc.text, tc.n, tc.m)
	}
}

func TestVerify_ResultFields(t *testing.T) {
	src := []byte("abcmNOPz")
	res := Verify(src, Params{N: 1, M: 1})
	assert.True(t, res.Match)
	assert.Equal(t, -1, res.Mismatch)
	assert.Equal(t, "bcdaOPQx", string(res.Ciphertext))
	assert.Equal(t, src, res.Recovered)
}

func TestCompare_ReportsFirstMismatch(t *testing.T) {
	r := compare([]byte("abcdef"), nil, []byte("abXdeY"))
	assert.False(t, r.Match)
	assert.Equal(t, 2, r.Mismatch)

	r = compare([]byte("abc"), nil, []byte("ab"))
	assert.False(t, r.Match)
	assert.Equal(t, 2, r.Mismatch)

	r = compare([]byte("abc"), nil, []byte("xbcd"))
	assert.False(t, r.Match)
	assert.Equal(t, 0, r.Mismatch)
}
