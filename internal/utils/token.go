package utils // package utils provides helpers for session tokens, hashing and IDs

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// SessionToken represents an opaque session identifier handed to the client
// inside a signed cookie.  The Raw field holds the random token value; Exp
// records the absolute expiry.  In the database only a SHA-256 hash of the
// raw value is stored, so a leaked sessions table cannot be replayed.
type SessionToken struct {
	Raw string    // raw token value placed in the cookie
	Exp time.Time // UTC expiration time (absolute, not sliding)
}

// NewSessionToken returns a cryptographically random session token that
// expires ttl from now.
func NewSessionToken(ttl time.Duration) (SessionToken, error) {
	raw, err := RandomHex(32) // 32 bytes -> 64 hex chars
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{
		Raw: raw,
		Exp: time.Now().UTC().Add(ttl),
	}, nil
}

// HashSessionRaw returns the SHA-256 hash of a raw session token as a hex
// string.  Only this hash is persisted.
func HashSessionRaw(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// SignToken appends an HMAC-SHA256 signature to a raw token, producing the
// cookie value "<token>.<signature>".  The guard verifies the signature
// before any database lookup happens.
func SignToken(secret, raw string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	return raw + "." + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignedToken splits a signed cookie value, checks the HMAC in
// constant time and returns the raw token on success.
func VerifySignedToken(secret, signed string) (string, bool) {
	i := strings.LastIndexByte(signed, '.')
	if i <= 0 || i == len(signed)-1 {
		return "", false
	}
	raw, sig := signed[:i], signed[i+1:]
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	want := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(sig), []byte(want)) {
		return "", false
	}
	return raw, true
}

// RandomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
