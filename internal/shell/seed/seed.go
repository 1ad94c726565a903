// Package seed loads initial site content from a YAML file. Seeding is
// idempotent: rows that already exist (matched by slug or email) are left
// alone, so the same file can run on every start.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kalipsan/sitecms/internal/core/domain"
	"github.com/kalipsan/sitecms/internal/shell/store"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Seed File Format
// =============================================================================

// File is the root of a seed YAML document.
type File struct {
	Admin      *AdminSeed      `yaml:"admin"`
	Settings   *SettingsSeed   `yaml:"settings"`
	Categories []CategorySeed  `yaml:"categories"`
	Products   []ProductSeed   `yaml:"products"`
	Posts      []PostSeed      `yaml:"posts"`
	Slides     []SlideSeed     `yaml:"slides"`
	References []ReferenceSeed `yaml:"references"`
	Catalogs   []CatalogSeed   `yaml:"catalogs"`
}

type AdminSeed struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type SettingsSeed struct {
	SiteName string `yaml:"site_name"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	Address  string `yaml:"address"`
	WhatsApp string `yaml:"whatsapp"`
}

type CategorySeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

type ProductSeed struct {
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"` // category slug
	Description string   `yaml:"description"`
	Dimensions  string   `yaml:"dimensions"`
	Weight      string   `yaml:"weight"`
	Material    string   `yaml:"material"`
	Featured    bool     `yaml:"featured"`
	Images      []string `yaml:"images"`
}

type PostSeed struct {
	Title   string `yaml:"title"`
	Excerpt string `yaml:"excerpt"`
	Content string `yaml:"content"`
	Image   string `yaml:"image"`
	// Seed content is live content: posts publish unless the file says
	// `published: false`.
	Published *bool `yaml:"published"`
}

type SlideSeed struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Image    string `yaml:"image"`
	CTAText  string `yaml:"cta_text"`
	CTALink  string `yaml:"cta_link"`
	Order    int    `yaml:"order"`
}

type ReferenceSeed struct {
	Name    string `yaml:"name"`
	Logo    string `yaml:"logo"`
	Website string `yaml:"website"`
	Order   int    `yaml:"order"`
}

type CatalogSeed struct {
	Name       string `yaml:"name"`
	FileURL    string `yaml:"file_url"`
	CoverImage string `yaml:"cover_image"`
}

// =============================================================================
// Loading
// =============================================================================

// Load parses a seed file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &f, nil
}

// Apply writes the seed content into the store. Everything runs inside one
// transaction; either the whole file applies or nothing does.
func Apply(ctx context.Context, s store.Store, f *File, logger *slog.Logger) error {
	return s.WithTx(ctx, func(tx store.Store) error {
		if f.Admin != nil {
			if err := seedAdmin(ctx, tx, f.Admin, logger); err != nil {
				return err
			}
		}
		if f.Settings != nil {
			if err := seedSettings(ctx, tx, f.Settings); err != nil {
				return err
			}
		}
		for _, c := range f.Categories {
			if err := seedCategory(ctx, tx, c, logger); err != nil {
				return err
			}
		}
		for _, p := range f.Products {
			if err := seedProduct(ctx, tx, p, logger); err != nil {
				return err
			}
		}
		for _, p := range f.Posts {
			if err := seedPost(ctx, tx, p, logger); err != nil {
				return err
			}
		}
		for _, sl := range f.Slides {
			if err := seedSlide(ctx, tx, sl); err != nil {
				return err
			}
		}
		for _, r := range f.References {
			if err := seedReference(ctx, tx, r); err != nil {
				return err
			}
		}
		for _, c := range f.Catalogs {
			if err := seedCatalog(ctx, tx, c); err != nil {
				return err
			}
		}
		return nil
	})
}

func seedAdmin(ctx context.Context, tx store.Store, a *AdminSeed, logger *slog.Logger) error {
	_, err := tx.GetUserByEmail(ctx, a.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	user, err := domain.NewUser(a.Name, a.Email, a.Password)
	if err != nil {
		return fmt.Errorf("invalid admin seed: %w", err)
	}
	if err := tx.CreateUser(ctx, user); err != nil {
		return err
	}
	logger.Info("seeded admin user", "email", a.Email)
	return nil
}

func seedSettings(ctx context.Context, tx store.Store, s *SettingsSeed) error {
	settings, err := tx.GetSettings(ctx)
	if err != nil {
		return err
	}

	if s.SiteName != "" {
		settings.SiteName = s.SiteName
	}
	if s.Phone != "" {
		settings.Phone = s.Phone
	}
	if s.Email != "" {
		settings.Email = s.Email
	}
	if s.Address != "" {
		settings.Address = s.Address
	}
	if s.WhatsApp != "" {
		settings.WhatsApp = s.WhatsApp
	}
	return tx.UpdateSettings(ctx, settings)
}

func seedCategory(ctx context.Context, tx store.Store, c CategorySeed, logger *slog.Logger) error {
	slug := domain.Slugify(c.Name)
	if _, err := tx.GetCategoryBySlug(ctx, slug); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	category, err := domain.NewCategory(c.Name, c.Description, c.Image)
	if err != nil {
		return fmt.Errorf("invalid category seed %q: %w", c.Name, err)
	}
	if err := tx.CreateCategory(ctx, category); err != nil {
		return err
	}
	logger.Info("seeded category", "slug", category.Slug)
	return nil
}

func seedProduct(ctx context.Context, tx store.Store, p ProductSeed, logger *slog.Logger) error {
	slug := domain.Slugify(p.Name)
	if _, err := tx.GetProductBySlug(ctx, slug); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	category, err := tx.GetCategoryBySlug(ctx, p.Category)
	if err != nil {
		return fmt.Errorf("product seed %q references unknown category %q: %w", p.Name, p.Category, err)
	}

	product, err := domain.NewProduct(p.Name, category.ID)
	if err != nil {
		return fmt.Errorf("invalid product seed %q: %w", p.Name, err)
	}
	product.Description = p.Description
	product.Dimensions = p.Dimensions
	product.Weight = p.Weight
	product.Material = p.Material
	product.Featured = p.Featured
	product.SetImages(p.Images)

	if err := tx.CreateProduct(ctx, product); err != nil {
		return err
	}
	logger.Info("seeded product", "slug", product.Slug)
	return nil
}

func seedPost(ctx context.Context, tx store.Store, p PostSeed, logger *slog.Logger) error {
	slug := domain.Slugify(p.Title)
	if _, err := tx.GetPostBySlug(ctx, slug); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	post, err := domain.NewPost(p.Title, p.Content)
	if err != nil {
		return fmt.Errorf("invalid post seed %q: %w", p.Title, err)
	}
	post.Excerpt = p.Excerpt
	post.Image = p.Image
	if p.Published == nil || *p.Published {
		post.Publish(time.Now())
	}

	if err := tx.CreatePost(ctx, post); err != nil {
		return err
	}
	logger.Info("seeded post", "slug", post.Slug)
	return nil
}

func seedSlide(ctx context.Context, tx store.Store, s SlideSeed) error {
	existing, err := tx.ListSlides(ctx, false)
	if err != nil {
		return err
	}
	for _, sl := range existing {
		if sl.Title == s.Title {
			return nil
		}
	}

	slide, err := domain.NewHeroSlide(s.Title, s.Image)
	if err != nil {
		return fmt.Errorf("invalid slide seed %q: %w", s.Title, err)
	}
	slide.Subtitle = s.Subtitle
	slide.CTAText = s.CTAText
	slide.CTALink = s.CTALink
	slide.Order = s.Order
	return tx.CreateSlide(ctx, slide)
}

func seedReference(ctx context.Context, tx store.Store, r ReferenceSeed) error {
	existing, err := tx.ListReferences(ctx, false)
	if err != nil {
		return err
	}
	for _, ref := range existing {
		if ref.Name == r.Name {
			return nil
		}
	}

	ref, err := domain.NewReference(r.Name)
	if err != nil {
		return fmt.Errorf("invalid reference seed %q: %w", r.Name, err)
	}
	ref.Logo = r.Logo
	ref.Website = r.Website
	ref.Order = r.Order
	return tx.CreateReference(ctx, ref)
}

func seedCatalog(ctx context.Context, tx store.Store, c CatalogSeed) error {
	existing, err := tx.ListCatalogs(ctx, false)
	if err != nil {
		return err
	}
	for _, cat := range existing {
		if cat.Name == c.Name {
			return nil
		}
	}

	catalog, err := domain.NewCatalog(c.Name, c.FileURL)
	if err != nil {
		return fmt.Errorf("invalid catalog seed %q: %w", c.Name, err)
	}
	catalog.CoverImage = c.CoverImage
	return tx.CreateCatalog(ctx, catalog)
}
