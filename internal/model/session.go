package model

import "time"

// Session models a row in the `sessions` table.  Sessions are created only
// at login, so every row carries an admin identity snapshot.  The raw token
// is never stored; only its SHA-256 hash.
//
// Fields:
//  ID        – primary key identifier.
//  TokenHash – SHA-256 hex digest of the opaque cookie token.
//  Admin     – identity snapshot captured at login.
//  ExpiresAt – absolute expiry, 8 hours after issuance.
//  CreatedAt – timestamp of creation.
type Session struct {
	ID        int64
	TokenHash string
	Admin     AdminIdentity
	ExpiresAt time.Time
	CreatedAt time.Time
}
