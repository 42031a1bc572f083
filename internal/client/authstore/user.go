package authstore

// User is the authenticated profile persisted alongside the access token.
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Avatar       string `json:"avatar,omitempty"`
	CompanyID    string `json:"companyId,omitempty"`
	IsSuperAdmin bool   `json:"isSuperAdmin,omitempty"`
	ReferralCode string `json:"referralCode,omitempty"`
}

// FullName is a display helper.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// UserPatch is a shallow partial update: only non-nil fields are applied.
type UserPatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Role         *string
	Avatar       *string
	CompanyID    *string
	IsSuperAdmin *bool
	ReferralCode *string
}

func (p UserPatch) apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.CompanyID != nil {
		u.CompanyID = *p.CompanyID
	}
	if p.IsSuperAdmin != nil {
		u.IsSuperAdmin = *p.IsSuperAdmin
	}
	if p.ReferralCode != nil {
		u.ReferralCode = *p.ReferralCode
	}
	return u
}
