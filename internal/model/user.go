package model

import "time"

// Role values stored in users.role. The role column is the single source of
// truth for authorization; it is carried into the JWT "role" claim at login
// and checked by the role middleware.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a row in the `users` table. PasswordHash may be empty for
// accounts created through an external identity provider; such accounts
// cannot log in with a password.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name.
//  Email        – unique, lowercased email address.
//  PasswordHash – bcrypt hash of the password, empty when absent.
//  Role         – authorization level ("user" or "admin").
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshToken models an entry in the `refresh_tokens` table. Only the
// SHA-256 hash of the raw token is persisted; the raw value is returned to
// the client once and never stored.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (nil if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64
	UserID    uint64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
