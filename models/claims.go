package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the token payload issued by the external auth provider. Subject
// carries the user ID every record is scoped to.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserID returns the identifier records are owned by.
func (c *Claims) UserID() string {
	return c.Subject
}
