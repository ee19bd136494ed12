// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import "context"

// Result is the outcome of a round trip.
type Result struct {
	Ciphertext []byte
	Recovered  []byte
	Match      bool
	Mismatch   int // first differing byte offset, -1 when Match
}

// Verify encrypts src, decrypts the ciphertext with the same parameters and
// compares the recovered bytes with src. A mismatch means the shift table is
// broken; it is reported in the Result rather than as an error.
func Verify(src []byte, p Params) Result {
	ct := TransformBytes(src, p, Encrypt)
	return compare(src, ct, TransformBytes(ct, p, Decrypt))
}

// VerifyParallel is Verify with both passes run through TransformParallel.
func VerifyParallel(ctx context.Context, src []byte, p Params, opts ParallelOptions) (Result, error) {
	ct, err := TransformParallel(ctx, src, p, Encrypt, opts)
	if err != nil {
		return Result{}, err
	}
	rec, err := TransformParallel(ctx, ct, p, Decrypt, opts)
	if err != nil {
		return Result{}, err
	}
	return compare(src, ct, rec), nil
}

// VerifyRoundTrip reports whether DecryptText(EncryptText(text)) == text.
func VerifyRoundTrip(text string, n, m int) bool {
	return Verify([]byte(text), Params{N: n, M: m}).Match
}

func compare(orig, ct, rec []byte) Result {
	r := Result{Ciphertext: ct, Recovered: rec, Match: true, Mismatch: -1}
	if len(orig) != len(rec) {
		r.Match = false
		r.Mismatch = min(len(orig), len(rec))
	}
	for i := 0; i < min(len(orig), len(rec)); i++ {
		if orig[i] != rec[i] {
			r.Match = false
			r.Mismatch = i
			break
		}
	}
	return r
}
