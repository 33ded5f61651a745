package auth

import (
	"crypto/hmac"
	"crypto/sha256"
)

// DigestKey hashes an API key to a fixed-length digest. Comparing digests
// instead of raw keys keeps the comparison constant-time and independent of
// the presented key's length.
func DigestKey(key string) [32]byte {
	return sha256.Sum256([]byte(key))
}

// EqualDigests compares two key digests in constant time.
func EqualDigests(a, b [32]byte) bool {
	return hmac.Equal(a[:], b[:])
}
