package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")
var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account already exists")

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}

// Account models an administrative back-office user. Passwords are only
// ever stored as bcrypt hashes; the plaintext never leaves the login path.
type Account struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Identity is the authenticated subject carried through a request after
// the session gate has verified a token.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
