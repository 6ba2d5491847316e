// Package randdata produces random strings and numbers for request payloads.
package randdata

import (
	"math/rand/v2"
	"strings"
)

const (
	Digits       = "0123456789"
	Letters      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Alphanumeric = Letters + Digits
)

// String returns n characters drawn uniformly from alphabet.
func String(alphabet string, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return b.String()
}

func Numeric(n int) string { return String(Digits, n) }

func Alpha(n int) string { return String(Letters, n) }

func AlphaNumeric(n int) string { return String(Alphanumeric, n) }

// Email builds "<alnum local>@<alpha domain>.com".
func Email(localLen, domainLen int) string {
	return AlphaNumeric(localLen) + "@" + Alpha(domainLen) + ".com"
}

// IntBetween is inclusive on both ends.
func IntBetween(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}

func Pick[T any](options []T) T {
	return options[rand.IntN(len(options))]
}
