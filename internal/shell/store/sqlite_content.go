package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kalipsan/sitecms/internal/core/domain"
)

// =============================================================================
// Reference Operations
// =============================================================================

type referenceRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Logo        string `db:"logo"`
	Website     string `db:"website"`
	SortOrder   int    `db:"sort_order"`
	Active      bool   `db:"active"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

func (r *referenceRow) toDomain() *domain.Reference {
	return &domain.Reference{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Logo:        r.Logo,
		Website:     r.Website,
		Order:       r.SortOrder,
		Active:      r.Active,
		CreatedAt:   parseTime(r.CreatedAt),
		UpdatedAt:   parseTime(r.UpdatedAt),
	}
}

func referenceToRow(ref *domain.Reference) map[string]any {
	return map[string]any{
		"id":          ref.ID,
		"name":        ref.Name,
		"description": ref.Description,
		"logo":        ref.Logo,
		"website":     ref.Website,
		"sort_order":  ref.Order,
		"active":      ref.Active,
		"created_at":  formatTime(ref.CreatedAt),
		"updated_at":  formatTime(ref.UpdatedAt),
	}
}

func (s *SQLiteStore) CreateReference(ctx context.Context, ref *domain.Reference) error {
	return createReference(ctx, s.db, ref)
}

func (s *SQLiteStore) GetReference(ctx context.Context, id string) (*domain.Reference, error) {
	return getReference(ctx, s.db, id)
}

func (s *SQLiteStore) UpdateReference(ctx context.Context, ref *domain.Reference) error {
	return updateReference(ctx, s.db, ref)
}

func (s *SQLiteStore) DeleteReference(ctx context.Context, id string) error {
	return deleteReference(ctx, s.db, id)
}

func (s *SQLiteStore) ListReferences(ctx context.Context, activeOnly bool) ([]domain.Reference, error) {
	return listReferences(ctx, s.db, activeOnly)
}

func createReference(ctx context.Context, exec executor, ref *domain.Reference) error {
	query := `
		INSERT INTO customer_references (id, name, description, logo, website, sort_order, active, created_at, updated_at)
		VALUES (:id, :name, :description, :logo, :website, :sort_order, :active, :created_at, :updated_at)`

	_, err := exec.NamedExecContext(ctx, query, referenceToRow(ref))
	if err != nil {
		if isUniqueViolation(err, "customer_references", "id") {
			return NewStoreError("CreateReference", "reference", ref.ID, "reference with this ID already exists", ErrDuplicateID)
		}
		return NewStoreError("CreateReference", "reference", ref.ID, err.Error(), err)
	}
	return nil
}

func getReference(ctx context.Context, exec executor, id string) (*domain.Reference, error) {
	var row referenceRow
	err := exec.GetContext(ctx, &row, `SELECT * FROM customer_references WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetReference", "reference", id, "reference not found", ErrNotFound)
		}
		return nil, NewStoreError("GetReference", "reference", id, err.Error(), err)
	}
	return row.toDomain(), nil
}

func updateReference(ctx context.Context, exec executor, ref *domain.Reference) error {
	query := `
		UPDATE customer_references SET
			name = :name,
			description = :description,
			logo = :logo,
			website = :website,
			sort_order = :sort_order,
			active = :active,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := exec.NamedExecContext(ctx, query, referenceToRow(ref))
	if err != nil {
		return NewStoreError("UpdateReference", "reference", ref.ID, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("UpdateReference", "reference", ref.ID, "reference not found", ErrNotFound)
	}
	return nil
}

func deleteReference(ctx context.Context, exec executor, id string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM customer_references WHERE id = ?`, id)
	if err != nil {
		return NewStoreError("DeleteReference", "reference", id, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeleteReference", "reference", id, "reference not found", ErrNotFound)
	}
	return nil
}

func listReferences(ctx context.Context, exec executor, activeOnly bool) ([]domain.Reference, error) {
	query := `SELECT * FROM customer_references`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	var rows []referenceRow
	err := exec.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, NewStoreError("ListReferences", "reference", "", err.Error(), err)
	}

	refs := make([]domain.Reference, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, *row.toDomain())
	}
	return refs, nil
}

// =============================================================================
// Hero Slide Operations
// =============================================================================

type slideRow struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	Subtitle  string `db:"subtitle"`
	Image     string `db:"image"`
	CTAText   string `db:"cta_text"`
	CTALink   string `db:"cta_link"`
	SortOrder int    `db:"sort_order"`
	Active    bool   `db:"active"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

func (r *slideRow) toDomain() *domain.HeroSlide {
	return &domain.HeroSlide{
		ID:        r.ID,
		Title:     r.Title,
		Subtitle:  r.Subtitle,
		Image:     r.Image,
		CTAText:   r.CTAText,
		CTALink:   r.CTALink,
		Order:     r.SortOrder,
		Active:    r.Active,
		CreatedAt: parseTime(r.CreatedAt),
		UpdatedAt: parseTime(r.UpdatedAt),
	}
}

func slideToRow(s *domain.HeroSlide) map[string]any {
	return map[string]any{
		"id":         s.ID,
		"title":      s.Title,
		"subtitle":   s.Subtitle,
		"image":      s.Image,
		"cta_text":   s.CTAText,
		"cta_link":   s.CTALink,
		"sort_order": s.Order,
		"active":     s.Active,
		"created_at": formatTime(s.CreatedAt),
		"updated_at": formatTime(s.UpdatedAt),
	}
}

func (s *SQLiteStore) CreateSlide(ctx context.Context, slide *domain.HeroSlide) error {
	return createSlide(ctx, s.db, slide)
}

func (s *SQLiteStore) GetSlide(ctx context.Context, id string) (*domain.HeroSlide, error) {
	return getSlide(ctx, s.db, id)
}

func (s *SQLiteStore) UpdateSlide(ctx context.Context, slide *domain.HeroSlide) error {
	return updateSlide(ctx, s.db, slide)
}

func (s *SQLiteStore) DeleteSlide(ctx context.Context, id string) error {
	return deleteSlide(ctx, s.db, id)
}

func (s *SQLiteStore) ListSlides(ctx context.Context, activeOnly bool) ([]domain.HeroSlide, error) {
	return listSlides(ctx, s.db, activeOnly)
}

func createSlide(ctx context.Context, exec executor, slide *domain.HeroSlide) error {
	query := `
		INSERT INTO hero_slides (id, title, subtitle, image, cta_text, cta_link, sort_order, active, created_at, updated_at)
		VALUES (:id, :title, :subtitle, :image, :cta_text, :cta_link, :sort_order, :active, :created_at, :updated_at)`

	_, err := exec.NamedExecContext(ctx, query, slideToRow(slide))
	if err != nil {
		if isUniqueViolation(err, "hero_slides", "id") {
			return NewStoreError("CreateSlide", "slide", slide.ID, "slide with this ID already exists", ErrDuplicateID)
		}
		return NewStoreError("CreateSlide", "slide", slide.ID, err.Error(), err)
	}
	return nil
}

func getSlide(ctx context.Context, exec executor, id string) (*domain.HeroSlide, error) {
	var row slideRow
	err := exec.GetContext(ctx, &row, `SELECT * FROM hero_slides WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetSlide", "slide", id, "slide not found", ErrNotFound)
		}
		return nil, NewStoreError("GetSlide", "slide", id, err.Error(), err)
	}
	return row.toDomain(), nil
}

func updateSlide(ctx context.Context, exec executor, slide *domain.HeroSlide) error {
	query := `
		UPDATE hero_slides SET
			title = :title,
			subtitle = :subtitle,
			image = :image,
			cta_text = :cta_text,
			cta_link = :cta_link,
			sort_order = :sort_order,
			active = :active,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := exec.NamedExecContext(ctx, query, slideToRow(slide))
	if err != nil {
		return NewStoreError("UpdateSlide", "slide", slide.ID, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("UpdateSlide", "slide", slide.ID, "slide not found", ErrNotFound)
	}
	return nil
}

func deleteSlide(ctx context.Context, exec executor, id string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM hero_slides WHERE id = ?`, id)
	if err != nil {
		return NewStoreError("DeleteSlide", "slide", id, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeleteSlide", "slide", id, "slide not found", ErrNotFound)
	}
	return nil
}

func listSlides(ctx context.Context, exec executor, activeOnly bool) ([]domain.HeroSlide, error) {
	query := `SELECT * FROM hero_slides`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`

	var rows []slideRow
	err := exec.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, NewStoreError("ListSlides", "slide", "", err.Error(), err)
	}

	slides := make([]domain.HeroSlide, 0, len(rows))
	for _, row := range rows {
		slides = append(slides, *row.toDomain())
	}
	return slides, nil
}

// =============================================================================
// Catalog Operations
// =============================================================================

type catalogRow struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	FileURL    string `db:"file_url"`
	CoverImage string `db:"cover_image"`
	SortOrder  int    `db:"sort_order"`
	Active     bool   `db:"active"`
	CreatedAt  string `db:"created_at"`
	UpdatedAt  string `db:"updated_at"`
}

func (r *catalogRow) toDomain() *domain.Catalog {
	return &domain.Catalog{
		ID:         r.ID,
		Name:       r.Name,
		FileURL:    r.FileURL,
		CoverImage: r.CoverImage,
		Order:      r.SortOrder,
		Active:     r.Active,
		CreatedAt:  parseTime(r.CreatedAt),
		UpdatedAt:  parseTime(r.UpdatedAt),
	}
}

func catalogToRow(c *domain.Catalog) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"file_url":    c.FileURL,
		"cover_image": c.CoverImage,
		"sort_order":  c.Order,
		"active":      c.Active,
		"created_at":  formatTime(c.CreatedAt),
		"updated_at":  formatTime(c.UpdatedAt),
	}
}

func (s *SQLiteStore) CreateCatalog(ctx context.Context, catalog *domain.Catalog) error {
	return createCatalog(ctx, s.db, catalog)
}

func (s *SQLiteStore) GetCatalog(ctx context.Context, id string) (*domain.Catalog, error) {
	return getCatalog(ctx, s.db, id)
}

func (s *SQLiteStore) UpdateCatalog(ctx context.Context, catalog *domain.Catalog) error {
	return updateCatalog(ctx, s.db, catalog)
}

func (s *SQLiteStore) DeleteCatalog(ctx context.Context, id string) error {
	return deleteCatalog(ctx, s.db, id)
}

func (s *SQLiteStore) ListCatalogs(ctx context.Context, activeOnly bool) ([]domain.Catalog, error) {
	return listCatalogs(ctx, s.db, activeOnly)
}

func createCatalog(ctx context.Context, exec executor, catalog *domain.Catalog) error {
	query := `
		INSERT INTO catalogs (id, name, file_url, cover_image, sort_order, active, created_at, updated_at)
		VALUES (:id, :name, :file_url, :cover_image, :sort_order, :active, :created_at, :updated_at)`

	_, err := exec.NamedExecContext(ctx, query, catalogToRow(catalog))
	if err != nil {
		if isUniqueViolation(err, "catalogs", "id") {
			return NewStoreError("CreateCatalog", "catalog", catalog.ID, "catalog with this ID already exists", ErrDuplicateID)
		}
		return NewStoreError("CreateCatalog", "catalog", catalog.ID, err.Error(), err)
	}
	return nil
}

func getCatalog(ctx context.Context, exec executor, id string) (*domain.Catalog, error) {
	var row catalogRow
	err := exec.GetContext(ctx, &row, `SELECT * FROM catalogs WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetCatalog", "catalog", id, "catalog not found", ErrNotFound)
		}
		return nil, NewStoreError("GetCatalog", "catalog", id, err.Error(), err)
	}
	return row.toDomain(), nil
}

func updateCatalog(ctx context.Context, exec executor, catalog *domain.Catalog) error {
	query := `
		UPDATE catalogs SET
			name = :name,
			file_url = :file_url,
			cover_image = :cover_image,
			sort_order = :sort_order,
			active = :active,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := exec.NamedExecContext(ctx, query, catalogToRow(catalog))
	if err != nil {
		return NewStoreError("UpdateCatalog", "catalog", catalog.ID, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("UpdateCatalog", "catalog", catalog.ID, "catalog not found", ErrNotFound)
	}
	return nil
}

func deleteCatalog(ctx context.Context, exec executor, id string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM catalogs WHERE id = ?`, id)
	if err != nil {
		return NewStoreError("DeleteCatalog", "catalog", id, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeleteCatalog", "catalog", id, "catalog not found", ErrNotFound)
	}
	return nil
}

func listCatalogs(ctx context.Context, exec executor, activeOnly bool) ([]domain.Catalog, error) {
	query := `SELECT * FROM catalogs`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	var rows []catalogRow
	err := exec.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, NewStoreError("ListCatalogs", "catalog", "", err.Error(), err)
	}

	catalogs := make([]domain.Catalog, 0, len(rows))
	for _, row := range rows {
		catalogs = append(catalogs, *row.toDomain())
	}
	return catalogs, nil
}

// =============================================================================
// Settings Operations
// =============================================================================

type settingsRow struct {
	ID                  string `db:"id"`
	SiteName            string `db:"site_name"`
	Logo                string `db:"logo"`
	Favicon             string `db:"favicon"`
	Phone               string `db:"phone"`
	Email               string `db:"email"`
	Address             string `db:"address"`
	WhatsApp            string `db:"whatsapp"`
	MapEmbedURL         string `db:"map_embed_url"`
	HeroTitle           string `db:"hero_title"`
	HeroSubtitle        string `db:"hero_subtitle"`
	HeroImage           string `db:"hero_image"`
	PrimaryColor        string `db:"primary_color"`
	SecondaryColor      string `db:"secondary_color"`
	AboutTitle          string `db:"about_title"`
	AboutContent        string `db:"about_content"`
	AboutImage          string `db:"about_image"`
	MissionTitle        string `db:"mission_title"`
	MissionContent      string `db:"mission_content"`
	VisionTitle         string `db:"vision_title"`
	VisionContent       string `db:"vision_content"`
	HomeMetaTitle       string `db:"home_meta_title"`
	HomeMetaDescription string `db:"home_meta_description"`
	CopyrightText       string `db:"copyright_text"`
	UpdatedAt           string `db:"updated_at"`
}

func (r *settingsRow) toDomain() *domain.Settings {
	return &domain.Settings{
		ID:                  r.ID,
		SiteName:            r.SiteName,
		Logo:                r.Logo,
		Favicon:             r.Favicon,
		Phone:               r.Phone,
		Email:               r.Email,
		Address:             r.Address,
		WhatsApp:            r.WhatsApp,
		MapEmbedURL:         r.MapEmbedURL,
		HeroTitle:           r.HeroTitle,
		HeroSubtitle:        r.HeroSubtitle,
		HeroImage:           r.HeroImage,
		PrimaryColor:        r.PrimaryColor,
		SecondaryColor:      r.SecondaryColor,
		AboutTitle:          r.AboutTitle,
		AboutContent:        r.AboutContent,
		AboutImage:          r.AboutImage,
		MissionTitle:        r.MissionTitle,
		MissionContent:      r.MissionContent,
		VisionTitle:         r.VisionTitle,
		VisionContent:       r.VisionContent,
		HomeMetaTitle:       r.HomeMetaTitle,
		HomeMetaDescription: r.HomeMetaDescription,
		CopyrightText:       r.CopyrightText,
		UpdatedAt:           parseTime(r.UpdatedAt),
	}
}

func settingsToRow(s *domain.Settings) map[string]any {
	return map[string]any{
		"id":                    s.ID,
		"site_name":             s.SiteName,
		"logo":                  s.Logo,
		"favicon":               s.Favicon,
		"phone":                 s.Phone,
		"email":                 s.Email,
		"address":               s.Address,
		"whatsapp":              s.WhatsApp,
		"map_embed_url":         s.MapEmbedURL,
		"hero_title":            s.HeroTitle,
		"hero_subtitle":         s.HeroSubtitle,
		"hero_image":            s.HeroImage,
		"primary_color":         s.PrimaryColor,
		"secondary_color":       s.SecondaryColor,
		"about_title":           s.AboutTitle,
		"about_content":         s.AboutContent,
		"about_image":           s.AboutImage,
		"mission_title":         s.MissionTitle,
		"mission_content":       s.MissionContent,
		"vision_title":          s.VisionTitle,
		"vision_content":        s.VisionContent,
		"home_meta_title":       s.HomeMetaTitle,
		"home_meta_description": s.HomeMetaDescription,
		"copyright_text":        s.CopyrightText,
		"updated_at":            formatTime(s.UpdatedAt),
	}
}

// GetSettings returns the single settings row, creating it with defaults on
// first access.
func (s *SQLiteStore) GetSettings(ctx context.Context) (*domain.Settings, error) {
	return getSettings(ctx, s.db)
}

func (s *SQLiteStore) UpdateSettings(ctx context.Context, settings *domain.Settings) error {
	return updateSettings(ctx, s.db, settings)
}

func getSettings(ctx context.Context, exec executor) (*domain.Settings, error) {
	var row settingsRow
	err := exec.GetContext(ctx, &row, `SELECT * FROM settings WHERE id = ?`, domain.SettingsID)
	if err == nil {
		return row.toDomain(), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, NewStoreError("GetSettings", "settings", domain.SettingsID, err.Error(), err)
	}

	defaults := domain.DefaultSettings()
	if err := insertSettings(ctx, exec, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

func insertSettings(ctx context.Context, exec executor, settings *domain.Settings) error {
	query := `
		INSERT INTO settings (
			id, site_name, logo, favicon, phone, email, address, whatsapp,
			map_embed_url, hero_title, hero_subtitle, hero_image, primary_color,
			secondary_color, about_title, about_content, about_image,
			mission_title, mission_content, vision_title, vision_content,
			home_meta_title, home_meta_description, copyright_text, updated_at
		) VALUES (
			:id, :site_name, :logo, :favicon, :phone, :email, :address, :whatsapp,
			:map_embed_url, :hero_title, :hero_subtitle, :hero_image, :primary_color,
			:secondary_color, :about_title, :about_content, :about_image,
			:mission_title, :mission_content, :vision_title, :vision_content,
			:home_meta_title, :home_meta_description, :copyright_text, :updated_at
		)`

	_, err := exec.NamedExecContext(ctx, query, settingsToRow(settings))
	if err != nil {
		return NewStoreError("GetSettings", "settings", settings.ID, err.Error(), err)
	}
	return nil
}

func updateSettings(ctx context.Context, exec executor, settings *domain.Settings) error {
	query := `
		UPDATE settings SET
			site_name = :site_name,
			logo = :logo,
			favicon = :favicon,
			phone = :phone,
			email = :email,
			address = :address,
			whatsapp = :whatsapp,
			map_embed_url = :map_embed_url,
			hero_title = :hero_title,
			hero_subtitle = :hero_subtitle,
			hero_image = :hero_image,
			primary_color = :primary_color,
			secondary_color = :secondary_color,
			about_title = :about_title,
			about_content = :about_content,
			about_image = :about_image,
			mission_title = :mission_title,
			mission_content = :mission_content,
			vision_title = :vision_title,
			vision_content = :vision_content,
			home_meta_title = :home_meta_title,
			home_meta_description = :home_meta_description,
			copyright_text = :copyright_text,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := exec.NamedExecContext(ctx, query, settingsToRow(settings))
	if err != nil {
		return NewStoreError("UpdateSettings", "settings", settings.ID, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return insertSettings(ctx, exec, settings)
	}
	return nil
}

// =============================================================================
// Contact Message Operations
// =============================================================================

type contactMessageRow struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	Message   string `db:"message"`
	Read      bool   `db:"read"`
	CreatedAt string `db:"created_at"`
}

func (r *contactMessageRow) toDomain() *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Message:   r.Message,
		Read:      r.Read,
		CreatedAt: parseTime(r.CreatedAt),
	}
}

func (s *SQLiteStore) CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	return createContactMessage(ctx, s.db, msg)
}

func (s *SQLiteStore) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return listContactMessages(ctx, s.db)
}

func (s *SQLiteStore) MarkContactMessageRead(ctx context.Context, id string) error {
	return markContactMessageRead(ctx, s.db, id)
}

func (s *SQLiteStore) DeleteContactMessage(ctx context.Context, id string) error {
	return deleteContactMessage(ctx, s.db, id)
}

func createContactMessage(ctx context.Context, exec executor, msg *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, phone, message, read, created_at)
		VALUES (:id, :name, :email, :phone, :message, :read, :created_at)`

	_, err := exec.NamedExecContext(ctx, query, map[string]any{
		"id":         msg.ID,
		"name":       msg.Name,
		"email":      msg.Email,
		"phone":      msg.Phone,
		"message":    msg.Message,
		"read":       msg.Read,
		"created_at": formatTime(msg.CreatedAt),
	})
	if err != nil {
		if isUniqueViolation(err, "contact_messages", "id") {
			return NewStoreError("CreateContactMessage", "contact message", msg.ID, "message with this ID already exists", ErrDuplicateID)
		}
		return NewStoreError("CreateContactMessage", "contact message", msg.ID, err.Error(), err)
	}
	return nil
}

func listContactMessages(ctx context.Context, exec executor) ([]domain.ContactMessage, error) {
	var rows []contactMessageRow
	err := exec.SelectContext(ctx, &rows, `SELECT * FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, NewStoreError("ListContactMessages", "contact message", "", err.Error(), err)
	}

	msgs := make([]domain.ContactMessage, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, *row.toDomain())
	}
	return msgs, nil
}

func markContactMessageRead(ctx context.Context, exec executor, id string) error {
	result, err := exec.ExecContext(ctx, `UPDATE contact_messages SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return NewStoreError("MarkContactMessageRead", "contact message", id, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("MarkContactMessageRead", "contact message", id, "message not found", ErrNotFound)
	}
	return nil
}

func deleteContactMessage(ctx context.Context, exec executor, id string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return NewStoreError("DeleteContactMessage", "contact message", id, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeleteContactMessage", "contact message", id, "message not found", ErrNotFound)
	}
	return nil
}

// =============================================================================
// User Operations
// =============================================================================

type userRow struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	CreatedAt    string `db:"created_at"`
}

func (r *userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		CreatedAt:    parseTime(r.CreatedAt),
	}
}

func (s *SQLiteStore) CreateUser(ctx context.Context, user *domain.User) error {
	return createUser(ctx, s.db, user)
}

func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return getUser(ctx, s.db, id)
}

func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return getUserByEmail(ctx, s.db, email)
}

func createUser(ctx context.Context, exec executor, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, created_at)
		VALUES (:id, :name, :email, :password_hash, :role, :created_at)`

	_, err := exec.NamedExecContext(ctx, query, map[string]any{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"role":          user.Role,
		"created_at":    formatTime(user.CreatedAt),
	})
	if err != nil {
		if isUniqueViolation(err, "users", "email") {
			return NewStoreError("CreateUser", "user", user.Email, "user with this email already exists", ErrDuplicateEmail)
		}
		if isUniqueViolation(err, "users", "id") {
			return NewStoreError("CreateUser", "user", user.ID, "user with this ID already exists", ErrDuplicateID)
		}
		return NewStoreError("CreateUser", "user", user.ID, err.Error(), err)
	}
	return nil
}

func getUser(ctx context.Context, exec executor, id string) (*domain.User, error) {
	var row userRow
	err := exec.GetContext(ctx, &row, `SELECT * FROM users WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetUser", "user", id, "user not found", ErrNotFound)
		}
		return nil, NewStoreError("GetUser", "user", id, err.Error(), err)
	}
	return row.toDomain(), nil
}

func getUserByEmail(ctx context.Context, exec executor, email string) (*domain.User, error) {
	var row userRow
	err := exec.GetContext(ctx, &row, `SELECT * FROM users WHERE email = ?`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetUserByEmail", "user", email, "user not found", ErrNotFound)
		}
		return nil, NewStoreError("GetUserByEmail", "user", email, err.Error(), err)
	}
	return row.toDomain(), nil
}
