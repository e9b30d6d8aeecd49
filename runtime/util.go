package runtime

import "github.com/rivo/uniseg"

// mod returns the non-negative remainder of a divided by b, for b > 0:
// unlike Go's %, the result is always in [0, b).
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// Mod is the exported, error-returning form of mod for callers outside this
// package: b must be positive.
func Mod(a, b int64) (int64, error) {
	if b <= 0 {
		return 0, &InvalidArgumentError{Message: "mod: divisor must be positive"}
	}
	r := a % b
	if r < 0 {
		r += b
	}
	return r, nil
}

// ByteArrayCompare compares a and b lexicographically on unsigned byte
// values. On a common-prefix tie, the shorter array is lesser. Returns a
// negative number, 0, or a positive number as a < b, a == b, or a > b.
func ByteArrayCompare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return len(a) - len(b)
}

// StringReverse reverses s by grapheme cluster (user-perceived character),
// not by byte or rune, so that combining sequences and multi-rune emoji
// survive the reversal intact.
func StringReverse(s string) string {
	clusters := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	out := make([]byte, 0, len(s))
	for i := len(clusters) - 1; i >= 0; i-- {
		out = append(out, clusters[i]...)
	}
	return string(out)
}
