// Package ident generates the short human-shareable tourist identifiers.
package ident

import (
	"crypto/rand"
	"math/big"
)

const (
	prefix    = "TRS-"
	suffixLen = 9
	charset   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewTouristID returns "TRS-" followed by 9 uppercase alphanumeric
// characters. The generator itself guarantees nothing about uniqueness;
// callers rely on the primary-key constraint and retry on collision.
func NewTouristID() string {
	buf := make([]byte, suffixLen)
	max := big.NewInt(int64(len(charset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(err)
		}
		buf[i] = charset[n.Int64()]
	}
	return prefix + string(buf)
}
