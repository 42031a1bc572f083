// Package branding holds the client-side branding cache and the render gate
// in front of it. The cache is the single in-process source of truth for
// tenant branding: it is seeded synchronously from the persistent store,
// refreshed in the background from the CMS endpoint, and never replaces
// known-good data with a failure.
package branding

const (
	// StorageKey is the persistent-store key the cache is seeded from and
	// persisted to after every successful refresh.
	StorageKey = "cms_branding"

	// Fallback display names, applied at the point of use only. The cache
	// itself stores records exactly as fetched.
	DefaultCompanyName = "RMS Platform"
	DefaultShortName   = "RMS"

	// TopicUpdated is published on the event bus after every successful
	// refresh that replaced the cached record.
	TopicUpdated = "branding-updated"
)

// Record is the tenant display configuration. Every field is optional;
// consumers resolve absent values through DisplayName/ShortDisplayName.
type Record struct {
	CompanyName    string `json:"companyName,omitempty"`
	ShortName      string `json:"shortName,omitempty"`
	Logo           string `json:"logo,omitempty"`
	WhatsappNumber string `json:"whatsappNumber,omitempty"`
	WhatsappLink   string `json:"whatsappLink,omitempty"`
	SupportEmail   string `json:"supportEmail,omitempty"`
	SupportPhone   string `json:"supportPhone,omitempty"`
	Address        string `json:"address,omitempty"`
}

// DisplayName returns the company name or the platform fallback.
func (r Record) DisplayName() string {
	if r.CompanyName != "" {
		return r.CompanyName
	}
	return DefaultCompanyName
}

// ShortDisplayName returns the short name or the platform fallback.
func (r Record) ShortDisplayName() string {
	if r.ShortName != "" {
		return r.ShortName
	}
	return DefaultShortName
}
