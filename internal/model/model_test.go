package model

import "testing"

func TestRun_ShortIDAndString(t *testing.T) {
	r := Run{RunID: "0123456789abcdef", Operation: OpEncrypt, N: 3, M: -2}
	if got := r.ShortID(); got != "01234567" {
		t.Fatalf("unexpected short id %q", got)
	}
	if got := r.String(); got != "0123456789abcdef encrypt n=3 m=-2" {
		t.Fatalf("unexpected string %q", got)
	}
	if got := (Run{RunID: "abc"}).ShortID(); got != "abc" {
		t.Fatalf("short ids must be returned unchanged, got %q", got)
	}
}
