package domain

import "time"

// =============================================================================
// Settings
// =============================================================================

// SettingsID is the fixed primary key of the single settings row.
const SettingsID = "default"

// Settings is the site-wide configuration record: branding, contact details
// and the static page copy. Exactly one row exists, keyed by SettingsID, and
// it is created on first read if absent.
type Settings struct {
	ID                  string    `json:"id"`
	SiteName            string    `json:"site_name"`
	Logo                string    `json:"logo,omitempty"`
	Favicon             string    `json:"favicon,omitempty"`
	Phone               string    `json:"phone,omitempty"`
	Email               string    `json:"email,omitempty"`
	Address             string    `json:"address,omitempty"`
	WhatsApp            string    `json:"whatsapp,omitempty"`
	MapEmbedURL         string    `json:"map_embed_url,omitempty"`
	HeroTitle           string    `json:"hero_title,omitempty"`
	HeroSubtitle        string    `json:"hero_subtitle,omitempty"`
	HeroImage           string    `json:"hero_image,omitempty"`
	PrimaryColor        string    `json:"primary_color,omitempty"`
	SecondaryColor      string    `json:"secondary_color,omitempty"`
	AboutTitle          string    `json:"about_title,omitempty"`
	AboutContent        string    `json:"about_content,omitempty"`
	AboutImage          string    `json:"about_image,omitempty"`
	MissionTitle        string    `json:"mission_title,omitempty"`
	MissionContent      string    `json:"mission_content,omitempty"`
	VisionTitle         string    `json:"vision_title,omitempty"`
	VisionContent       string    `json:"vision_content,omitempty"`
	HomeMetaTitle       string    `json:"home_meta_title,omitempty"`
	HomeMetaDescription string    `json:"home_meta_description,omitempty"`
	CopyrightText       string    `json:"copyright_text,omitempty"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// DefaultSettings returns the settings row created on first access.
func DefaultSettings() *Settings {
	return &Settings{
		ID:        SettingsID,
		SiteName:  "Beton Kalıp Firması",
		UpdatedAt: time.Now(),
	}
}
