package models

// BrandingID is the fixed row id of the singleton branding record
const BrandingID = "app"

// Branding holds the app name, tagline, logo and accent color shown on
// the landing screen. A single remote row overrides the defaults.
type Branding struct {
	ID           string `gorm:"primarykey" json:"id"`
	Name         string `json:"name"`
	Tagline      string `json:"tagline"`
	LogoURL      string `json:"logo_url"`
	PrimaryColor string `json:"primary_color"`
}

// DefaultBranding returns the hardcoded branding used until a remote
// override is fetched successfully
func DefaultBranding() Branding {
	return Branding{
		ID:           BrandingID,
		Name:         "School To-Do",
		Tagline:      "Stay organized, stay ahead.",
		LogoURL:      "",
		PrimaryColor: "#5B9EF8",
	}
}

// Merge overlays b with the non-empty fields of remote, keeping defaults
// for anything the remote row left null or blank.
func (b Branding) Merge(remote Branding) Branding {
	out := b
	out.ID = BrandingID
	if remote.Name != "" {
		out.Name = remote.Name
	}
	if remote.Tagline != "" {
		out.Tagline = remote.Tagline
	}
	if remote.LogoURL != "" {
		out.LogoURL = remote.LogoURL
	}
	if remote.PrimaryColor != "" {
		out.PrimaryColor = remote.PrimaryColor
	}
	return out
}
