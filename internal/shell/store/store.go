package store

import (
	"context"

	"github.com/kalipsan/sitecms/internal/core/domain"
)

// =============================================================================
// Store Interface
// =============================================================================

// Store defines the persistence interface for site content.
type Store interface {
	// Category operations
	CreateCategory(ctx context.Context, category *domain.Category) error
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CountProductsInCategory(ctx context.Context, categoryID string) (int, error)

	// Product operations
	CreateProduct(ctx context.Context, product *domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error)

	// Post operations
	CreatePost(ctx context.Context, post *domain.Post) error
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error)
	UpdatePost(ctx context.Context, post *domain.Post) error
	DeletePost(ctx context.Context, id string) error
	ListPosts(ctx context.Context, filter PostFilter) ([]domain.Post, error)

	// Reference operations
	CreateReference(ctx context.Context, ref *domain.Reference) error
	GetReference(ctx context.Context, id string) (*domain.Reference, error)
	UpdateReference(ctx context.Context, ref *domain.Reference) error
	DeleteReference(ctx context.Context, id string) error
	ListReferences(ctx context.Context, activeOnly bool) ([]domain.Reference, error)

	// Hero slide operations
	CreateSlide(ctx context.Context, slide *domain.HeroSlide) error
	GetSlide(ctx context.Context, id string) (*domain.HeroSlide, error)
	UpdateSlide(ctx context.Context, slide *domain.HeroSlide) error
	DeleteSlide(ctx context.Context, id string) error
	ListSlides(ctx context.Context, activeOnly bool) ([]domain.HeroSlide, error)

	// Catalog operations
	CreateCatalog(ctx context.Context, catalog *domain.Catalog) error
	GetCatalog(ctx context.Context, id string) (*domain.Catalog, error)
	UpdateCatalog(ctx context.Context, catalog *domain.Catalog) error
	DeleteCatalog(ctx context.Context, id string) error
	ListCatalogs(ctx context.Context, activeOnly bool) ([]domain.Catalog, error)

	// Settings operations (single row, created on first read)
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, settings *domain.Settings) error

	// Contact message operations
	CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) error
	ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error)
	MarkContactMessageRead(ctx context.Context, id string) error
	DeleteContactMessage(ctx context.Context, id string) error

	// User operations
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// Transaction support
	WithTx(ctx context.Context, fn func(Store) error) error

	// Lifecycle
	Close() error
}

// =============================================================================
// Filters
// =============================================================================

// ProductFilter narrows product listings. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID string
	Featured   *bool
	Limit      int
}

// PostFilter narrows post listings. Zero values mean "no filter".
type PostFilter struct {
	Published  *bool
	CategoryID string
	Limit      int
}

// BoolFilter is a convenience for building *bool filter values inline.
func BoolFilter(v bool) *bool {
	return &v
}
