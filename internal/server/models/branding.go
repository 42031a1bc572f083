package models

import "time"

// BrandingSettings holds the white-label branding document served to clients.
// All presentation fields are optional; empty strings mean "not configured".
type BrandingSettings struct {
	CompanyName    string    `json:"companyName,omitempty"`
	ShortName      string    `json:"shortName,omitempty"`
	Logo           string    `json:"logo,omitempty"`
	WhatsappNumber string    `json:"whatsappNumber,omitempty"`
	WhatsappLink   string    `json:"whatsappLink,omitempty"`
	SupportEmail   string    `json:"supportEmail,omitempty"`
	SupportPhone   string    `json:"supportPhone,omitempty"`
	Address        string    `json:"address,omitempty"`
	UpdatedAt      time.Time `json:"-"`
}
