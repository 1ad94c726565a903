package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/kalipsan/sitecms/internal/core/domain"
)

// =============================================================================
// Transaction Store
// =============================================================================

// txSQLiteStore is a Store bound to an open transaction. It reuses the shared
// implementation functions with the transaction as the executor.
type txSQLiteStore struct {
	tx *sqlx.Tx
}

func (s *txSQLiteStore) CreateCategory(ctx context.Context, category *domain.Category) error {
	return createCategory(ctx, s.tx, category)
}

func (s *txSQLiteStore) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return getCategory(ctx, s.tx, id)
}

func (s *txSQLiteStore) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return getCategoryBySlug(ctx, s.tx, slug)
}

func (s *txSQLiteStore) UpdateCategory(ctx context.Context, category *domain.Category) error {
	return updateCategory(ctx, s.tx, category)
}

func (s *txSQLiteStore) DeleteCategory(ctx context.Context, id string) error {
	return deleteCategory(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return listCategories(ctx, s.tx)
}

func (s *txSQLiteStore) CountProductsInCategory(ctx context.Context, categoryID string) (int, error) {
	return countProductsInCategory(ctx, s.tx, categoryID)
}

func (s *txSQLiteStore) CreateProduct(ctx context.Context, product *domain.Product) error {
	return createProduct(ctx, s.tx, product)
}

func (s *txSQLiteStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return getProduct(ctx, s.tx, id)
}

func (s *txSQLiteStore) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return getProductBySlug(ctx, s.tx, slug)
}

func (s *txSQLiteStore) UpdateProduct(ctx context.Context, product *domain.Product) error {
	return updateProduct(ctx, s.tx, product)
}

func (s *txSQLiteStore) DeleteProduct(ctx context.Context, id string) error {
	return deleteProduct(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	return listProducts(ctx, s.tx, filter)
}

func (s *txSQLiteStore) CreatePost(ctx context.Context, post *domain.Post) error {
	return createPost(ctx, s.tx, post)
}

func (s *txSQLiteStore) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return getPost(ctx, s.tx, id)
}

func (s *txSQLiteStore) GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return getPostBySlug(ctx, s.tx, slug)
}

func (s *txSQLiteStore) UpdatePost(ctx context.Context, post *domain.Post) error {
	return updatePost(ctx, s.tx, post)
}

func (s *txSQLiteStore) DeletePost(ctx context.Context, id string) error {
	return deletePost(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListPosts(ctx context.Context, filter PostFilter) ([]domain.Post, error) {
	return listPosts(ctx, s.tx, filter)
}

func (s *txSQLiteStore) CreateReference(ctx context.Context, ref *domain.Reference) error {
	return createReference(ctx, s.tx, ref)
}

func (s *txSQLiteStore) GetReference(ctx context.Context, id string) (*domain.Reference, error) {
	return getReference(ctx, s.tx, id)
}

func (s *txSQLiteStore) UpdateReference(ctx context.Context, ref *domain.Reference) error {
	return updateReference(ctx, s.tx, ref)
}

func (s *txSQLiteStore) DeleteReference(ctx context.Context, id string) error {
	return deleteReference(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListReferences(ctx context.Context, activeOnly bool) ([]domain.Reference, error) {
	return listReferences(ctx, s.tx, activeOnly)
}

func (s *txSQLiteStore) CreateSlide(ctx context.Context, slide *domain.HeroSlide) error {
	return createSlide(ctx, s.tx, slide)
}

func (s *txSQLiteStore) GetSlide(ctx context.Context, id string) (*domain.HeroSlide, error) {
	return getSlide(ctx, s.tx, id)
}

func (s *txSQLiteStore) UpdateSlide(ctx context.Context, slide *domain.HeroSlide) error {
	return updateSlide(ctx, s.tx, slide)
}

func (s *txSQLiteStore) DeleteSlide(ctx context.Context, id string) error {
	return deleteSlide(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListSlides(ctx context.Context, activeOnly bool) ([]domain.HeroSlide, error) {
	return listSlides(ctx, s.tx, activeOnly)
}

func (s *txSQLiteStore) CreateCatalog(ctx context.Context, catalog *domain.Catalog) error {
	return createCatalog(ctx, s.tx, catalog)
}

func (s *txSQLiteStore) GetCatalog(ctx context.Context, id string) (*domain.Catalog, error) {
	return getCatalog(ctx, s.tx, id)
}

func (s *txSQLiteStore) UpdateCatalog(ctx context.Context, catalog *domain.Catalog) error {
	return updateCatalog(ctx, s.tx, catalog)
}

func (s *txSQLiteStore) DeleteCatalog(ctx context.Context, id string) error {
	return deleteCatalog(ctx, s.tx, id)
}

func (s *txSQLiteStore) ListCatalogs(ctx context.Context, activeOnly bool) ([]domain.Catalog, error) {
	return listCatalogs(ctx, s.tx, activeOnly)
}

func (s *txSQLiteStore) GetSettings(ctx context.Context) (*domain.Settings, error) {
	return getSettings(ctx, s.tx)
}

func (s *txSQLiteStore) UpdateSettings(ctx context.Context, settings *domain.Settings) error {
	return updateSettings(ctx, s.tx, settings)
}

func (s *txSQLiteStore) CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	return createContactMessage(ctx, s.tx, msg)
}

func (s *txSQLiteStore) ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return listContactMessages(ctx, s.tx)
}

func (s *txSQLiteStore) MarkContactMessageRead(ctx context.Context, id string) error {
	return markContactMessageRead(ctx, s.tx, id)
}

func (s *txSQLiteStore) DeleteContactMessage(ctx context.Context, id string) error {
	return deleteContactMessage(ctx, s.tx, id)
}

func (s *txSQLiteStore) CreateUser(ctx context.Context, user *domain.User) error {
	return createUser(ctx, s.tx, user)
}

func (s *txSQLiteStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return getUser(ctx, s.tx, id)
}

func (s *txSQLiteStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return getUserByEmail(ctx, s.tx, email)
}

// WithTx runs fn in the already open transaction. Nested transactions are not
// supported by SQLite.
func (s *txSQLiteStore) WithTx(ctx context.Context, fn func(Store) error) error {
	return fn(s)
}

// Close is a no-op inside a transaction; the connection is owned by the
// parent store.
func (s *txSQLiteStore) Close() error {
	return nil
}
