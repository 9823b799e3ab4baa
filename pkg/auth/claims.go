package auth

import "github.com/golang-jwt/jwt/v5"

// Admin roles accepted by the dashboard API.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// AdminClaims is the typed JWT presented by dashboard operators. The subject
// is the admin id recorded as the actor on mutations.
type AdminClaims struct {
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// AdminID returns the token subject.
func (c *AdminClaims) AdminID() string {
	if c == nil {
		return ""
	}
	return c.Subject
}

// IsAdmin reports whether the role may use the dashboard API.
func (c *AdminClaims) IsAdmin() bool {
	if c == nil {
		return false
	}
	return c.Role == RoleAdmin || c.Role == RoleSuperAdmin
}
