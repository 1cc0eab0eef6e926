package model

// Admin represents a staff account row in the `admins` table.  The password
// hash is never serialized; listing endpoints only ever select the public
// columns.
//
// Fields:
//  ID           – primary key identifier.
//  Username     – unique login identifier.
//  PasswordHash – bcrypt hash of the password.
//  Name         – display name shown in the admin panel.
//  CreatedAt    – RFC 3339 creation timestamp.
type Admin struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	CreatedAt    string `json:"created_at"`
}

// AdminIdentity is the snapshot of an authenticated admin attached to a
// session.  It is captured at login time and travels with the session row,
// so a rename after login does not alter an existing session.
type AdminIdentity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
