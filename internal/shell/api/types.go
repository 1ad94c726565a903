package api

// =============================================================================
// Request Types
// =============================================================================

// CategoryRequest is the body for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ProductRequest is the body for creating or updating a product.
type ProductRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Content         string   `json:"content,omitempty"`
	Dimensions      string   `json:"dimensions,omitempty"`
	Weight          string   `json:"weight,omitempty"`
	Material        string   `json:"material,omitempty"`
	MetaTitle       string   `json:"meta_title,omitempty"`
	MetaDescription string   `json:"meta_description,omitempty"`
	VideoURL        string   `json:"video_url,omitempty"`
	CategoryID      string   `json:"category_id"`
	Featured        bool     `json:"featured"`
	Order           int      `json:"order"`
	Images          []string `json:"images,omitempty"`
}

// PostRequest is the body for creating or updating a post.
type PostRequest struct {
	Title           string `json:"title"`
	Excerpt         string `json:"excerpt,omitempty"`
	Content         string `json:"content"`
	Image           string `json:"image,omitempty"`
	Published       bool   `json:"published"`
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	CategoryID      string `json:"category_id,omitempty"`
}

// ReferenceRequest is the body for creating or updating a reference.
type ReferenceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Website     string `json:"website,omitempty"`
	Order       int    `json:"order"`
	Active      *bool  `json:"active,omitempty"`
}

// SlideRequest is the body for creating or updating a hero slide.
type SlideRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image"`
	CTAText  string `json:"cta_text,omitempty"`
	CTALink  string `json:"cta_link,omitempty"`
	Order    int    `json:"order"`
	Active   *bool  `json:"active,omitempty"`
}

// CatalogRequest is the body for creating or updating a catalog.
type CatalogRequest struct {
	Name       string `json:"name"`
	FileURL    string `json:"file_url"`
	CoverImage string `json:"cover_image,omitempty"`
	Order      int    `json:"order"`
	Active     *bool  `json:"active,omitempty"`
}

// SettingsRequest is the body for updating site settings. All fields are
// applied as given; the settings row is replaced, not patched.
type SettingsRequest struct {
	SiteName            string `json:"site_name"`
	Logo                string `json:"logo,omitempty"`
	Favicon             string `json:"favicon,omitempty"`
	Phone               string `json:"phone,omitempty"`
	Email               string `json:"email,omitempty"`
	Address             string `json:"address,omitempty"`
	WhatsApp            string `json:"whatsapp,omitempty"`
	MapEmbedURL         string `json:"map_embed_url,omitempty"`
	HeroTitle           string `json:"hero_title,omitempty"`
	HeroSubtitle        string `json:"hero_subtitle,omitempty"`
	HeroImage           string `json:"hero_image,omitempty"`
	PrimaryColor        string `json:"primary_color,omitempty"`
	SecondaryColor      string `json:"secondary_color,omitempty"`
	AboutTitle          string `json:"about_title,omitempty"`
	AboutContent        string `json:"about_content,omitempty"`
	AboutImage          string `json:"about_image,omitempty"`
	MissionTitle        string `json:"mission_title,omitempty"`
	MissionContent      string `json:"mission_content,omitempty"`
	VisionTitle         string `json:"vision_title,omitempty"`
	VisionContent       string `json:"vision_content,omitempty"`
	HomeMetaTitle       string `json:"home_meta_title,omitempty"`
	HomeMetaDescription string `json:"home_meta_description,omitempty"`
	CopyrightText       string `json:"copyright_text,omitempty"`
}

// ContactRequest is the body for the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// LoginRequest is the body for admin login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// =============================================================================
// Response Types
// =============================================================================

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is the health check body.
type HealthResponse struct {
	Status string `json:"status"`
}

// UserResponse describes the authenticated user; the password hash never
// leaves the server.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UploadResponse describes a stored media file.
type UploadResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// StatusResponse acknowledges an operation with no payload.
type StatusResponse struct {
	Status string `json:"status"`
}
