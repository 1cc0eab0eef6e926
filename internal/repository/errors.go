// Package repository implements database access for the committee backend.
// Each table gets its own repository over *sql.DB.  Sentinel errors defined
// here let handlers map failures to HTTP statuses without inspecting
// driver-specific error text themselves.
package repository

import "errors"

// ErrUsernameTaken is returned when creating an admin whose username
// already exists.  Handlers translate this into HTTP 409.
var ErrUsernameTaken = errors.New("username already taken")
