package models

import "time"

// User is the server-side account record. PasswordHash is a bcrypt hash and
// never leaves the repository layer.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash []byte
	Role         string
	Avatar       string
	CompanyID    string
	IsSuperAdmin bool
	ReferralCode string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Roles assignable to a user.
const (
	RoleAdmin   = "admin"
	RoleRealtor = "realtor"
)

// UserPatch describes a partial profile update. Nil fields are left as-is.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Avatar    *string
}

// Apply returns a copy of u with the non-nil patch fields overlaid.
func (p UserPatch) Apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	return u
}
