// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

// Transform applies the cipher to every character of text.
//
// The mapping works on bytes. ASCII letters never appear inside a multi-byte
// UTF-8 sequence, so this is the same as mapping code points, and invalid
// UTF-8 survives byte for byte.
func Transform(text string, p Params, d Direction) string {
	return string(TransformBytes([]byte(text), p, d))
}

// TransformBytes returns a new slice of the same length holding the
// transformed bytes of src. src is not modified.
func TransformBytes(src []byte, p Params, d Direction) []byte {
	dst := make([]byte, len(src))
	NewKey(p, d).mapInto(dst, src)
	return dst
}

// EncryptText encrypts text with parameters n and m.
func EncryptText(text string, n, m int) string {
	return Transform(text, Params{N: n, M: m}, Encrypt)
}

// DecryptText reverses EncryptText for the same n and m.
func DecryptText(text string, n, m int) string {
	return Transform(text, Params{N: n, M: m}, Decrypt)
}

// mapInto writes the translation of src into dst; len(dst) must be >= len(src).
func (k *Key) mapInto(dst, src []byte) {
	for i, b := range src {
		dst[i] = k.table[b]
	}
}
