package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/kalipsan/sitecms/internal/core/domain"
	"github.com/kalipsan/sitecms/internal/core/validation"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// =============================================================================
// Executor Interface - Shared by DB and Transaction
// =============================================================================

// executor abstracts database operations that can be performed on both
// a database connection and a transaction.
type executor interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// =============================================================================
// SQLiteStore
// =============================================================================

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, NewStoreError("NewSQLiteStore", "", "", "failed to open database", ErrConnectionFailed)
	}

	// SQLite handles one writer at a time; a single pooled connection also
	// keeps :memory: databases coherent across queries.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", "", "failed to ping database", ErrConnectionFailed)
	}

	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", "", err.Error(), ErrMigrationFailed)
	}

	return &SQLiteStore{db: db}, nil
}

// runMigrations runs database migrations using embedded SQL files.
func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// =============================================================================
// Time Helpers
// =============================================================================

// Timestamps are stored as RFC3339 strings.

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func parseTimePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure on
// the given table column.
func isUniqueViolation(err error, table, column string) bool {
	return strings.Contains(err.Error(), fmt.Sprintf("UNIQUE constraint failed: %s.%s", table, column))
}

// =============================================================================
// Category Operations
// =============================================================================

// categoryRow represents a category row in the database.
type categoryRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Description string `db:"description"`
	Image       string `db:"image"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

func (r *categoryRow) toDomain() *domain.Category {
	return &domain.Category{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Image:       r.Image,
		CreatedAt:   parseTime(r.CreatedAt),
		UpdatedAt:   parseTime(r.UpdatedAt),
	}
}

func categoryToRow(c *domain.Category) map[string]any {
	return map[string]any{
		"id":          c.ID,
		"name":        c.Name,
		"slug":        c.Slug,
		"description": c.Description,
		"image":       c.Image,
		"created_at":  formatTime(c.CreatedAt),
		"updated_at":  formatTime(c.UpdatedAt),
	}
}

func (s *SQLiteStore) CreateCategory(ctx context.Context, category *domain.Category) error {
	return createCategory(ctx, s.db, category)
}

func (s *SQLiteStore) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return getCategory(ctx, s.db, id)
}

func (s *SQLiteStore) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return getCategoryBySlug(ctx, s.db, slug)
}

func (s *SQLiteStore) UpdateCategory(ctx context.Context, category *domain.Category) error {
	return updateCategory(ctx, s.db, category)
}

func (s *SQLiteStore) DeleteCategory(ctx context.Context, id string) error {
	return deleteCategory(ctx, s.db, id)
}

func (s *SQLiteStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return listCategories(ctx, s.db)
}

func (s *SQLiteStore) CountProductsInCategory(ctx context.Context, categoryID string) (int, error) {
	return countProductsInCategory(ctx, s.db, categoryID)
}

func createCategory(ctx context.Context, exec executor, category *domain.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, description, image, created_at, updated_at)
		VALUES (:id, :name, :slug, :description, :image, :created_at, :updated_at)`

	_, err := exec.NamedExecContext(ctx, query, categoryToRow(category))
	if err != nil {
		if isUniqueViolation(err, "categories", "slug") {
			return NewStoreError("CreateCategory", "category", category.Slug, "category with this slug already exists", ErrDuplicateSlug)
		}
		if isUniqueViolation(err, "categories", "id") {
			return NewStoreError("CreateCategory", "category", category.ID, "category with this ID already exists", ErrDuplicateID)
		}
		return NewStoreError("CreateCategory", "category", category.ID, err.Error(), err)
	}
	return nil
}

func getCategory(ctx context.Context, exec executor, id string) (*domain.Category, error) {
	var row categoryRow
	err := exec.GetContext(ctx, &row, `SELECT * FROM categories WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetCategory", "category", id, "category not found", ErrNotFound)
		}
		return nil, NewStoreError("GetCategory", "category", id, err.Error(), err)
	}
	return row.toDomain(), nil
}

func getCategoryBySlug(ctx context.Context, exec executor, slug string) (*domain.Category, error) {
	var row categoryRow
	err := exec.GetContext(ctx, &row, `SELECT * FROM categories WHERE slug = ?`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetCategoryBySlug", "category", slug, "category not found", ErrNotFound)
		}
		return nil, NewStoreError("GetCategoryBySlug", "category", slug, err.Error(), err)
	}
	return row.toDomain(), nil
}

func updateCategory(ctx context.Context, exec executor, category *domain.Category) error {
	query := `
		UPDATE categories SET
			name = :name,
			slug = :slug,
			description = :description,
			image = :image,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := exec.NamedExecContext(ctx, query, categoryToRow(category))
	if err != nil {
		if isUniqueViolation(err, "categories", "slug") {
			return NewStoreError("UpdateCategory", "category", category.Slug, "category with this slug already exists", ErrDuplicateSlug)
		}
		return NewStoreError("UpdateCategory", "category", category.ID, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("UpdateCategory", "category", category.ID, "category not found", ErrNotFound)
	}
	return nil
}

func deleteCategory(ctx context.Context, exec executor, id string) error {
	count, err := countProductsInCategory(ctx, exec, id)
	if err != nil {
		return err
	}
	if ok, reason := validation.CanDeleteCategory(count); !ok {
		return NewStoreError("DeleteCategory", "category", id, reason, ErrCategoryInUse)
	}

	result, err := exec.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return NewStoreError("DeleteCategory", "category", id, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeleteCategory", "category", id, "category not found", ErrNotFound)
	}
	return nil
}

func listCategories(ctx context.Context, exec executor) ([]domain.Category, error) {
	var rows []categoryRow
	err := exec.SelectContext(ctx, &rows, `SELECT * FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, NewStoreError("ListCategories", "category", "", err.Error(), err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, *row.toDomain())
	}
	return categories, nil
}

func countProductsInCategory(ctx context.Context, exec executor, categoryID string) (int, error) {
	var count int
	err := exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM products WHERE category_id = ?`, categoryID)
	if err != nil {
		return 0, NewStoreError("CountProductsInCategory", "category", categoryID, err.Error(), err)
	}
	return count, nil
}

// =============================================================================
// Product Operations
// =============================================================================

// productRow represents a product row in the database. The gallery is stored
// as a JSON column.
type productRow struct {
	ID              string  `db:"id"`
	Name            string  `db:"name"`
	Slug            string  `db:"slug"`
	Description     string  `db:"description"`
	Content         string  `db:"content"`
	Dimensions      string  `db:"dimensions"`
	Weight          string  `db:"weight"`
	Material        string  `db:"material"`
	MetaTitle       string  `db:"meta_title"`
	MetaDescription string  `db:"meta_description"`
	VideoURL        string  `db:"video_url"`
	CategoryID      string  `db:"category_id"`
	Featured        bool    `db:"featured"`
	SortOrder       int     `db:"sort_order"`
	Images          *string `db:"images"`
	CreatedAt       string  `db:"created_at"`
	UpdatedAt       string  `db:"updated_at"`
}

func (r *productRow) toDomain() (*domain.Product, error) {
	p := &domain.Product{
		ID:              r.ID,
		Name:            r.Name,
		Slug:            r.Slug,
		Description:     r.Description,
		Content:         r.Content,
		Dimensions:      r.Dimensions,
		Weight:          r.Weight,
		Material:        r.Material,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		VideoURL:        r.VideoURL,
		CategoryID:      r.CategoryID,
		Featured:        r.Featured,
		Order:           r.SortOrder,
		CreatedAt:       parseTime(r.CreatedAt),
		UpdatedAt:       parseTime(r.UpdatedAt),
	}
	if r.Images != nil && *r.Images != "" {
		if err := json.Unmarshal([]byte(*r.Images), &p.Images); err != nil {
			return nil, NewStoreError("rowToProduct", "product", r.ID, "failed to deserialize images", ErrInvalidData)
		}
	}
	return p, nil
}

func productToRow(p *domain.Product) (map[string]any, error) {
	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return nil, NewStoreError("productToRow", "product", p.ID, "failed to serialize images", ErrInvalidData)
	}
	return map[string]any{
		"id":               p.ID,
		"name":             p.Name,
		"slug":             p.Slug,
		"description":      p.Description,
		"content":          p.Content,
		"dimensions":       p.Dimensions,
		"weight":           p.Weight,
		"material":         p.Material,
		"meta_title":       p.MetaTitle,
		"meta_description": p.MetaDescription,
		"video_url":        p.VideoURL,
		"category_id":      p.CategoryID,
		"featured":         p.Featured,
		"sort_order":       p.Order,
		"images":           string(imagesJSON),
		"created_at":       formatTime(p.CreatedAt),
		"updated_at":       formatTime(p.UpdatedAt),
	}, nil
}

func (s *SQLiteStore) CreateProduct(ctx context.Context, product *domain.Product) error {
	return createProduct(ctx, s.db, product)
}

func (s *SQLiteStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return getProduct(ctx, s.db, id)
}

func (s *SQLiteStore) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return getProductBySlug(ctx, s.db, slug)
}

func (s *SQLiteStore) UpdateProduct(ctx context.Context, product *domain.Product) error {
	return updateProduct(ctx, s.db, product)
}

func (s *SQLiteStore) DeleteProduct(ctx context.Context, id string) error {
	return deleteProduct(ctx, s.db, id)
}

func (s *SQLiteStore) ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	return listProducts(ctx, s.db, filter)
}

func createProduct(ctx context.Context, exec executor, product *domain.Product) error {
	row, err := productToRow(product)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO products (
			id, name, slug, description, content, dimensions, weight, material,
			meta_title, meta_description, video_url, category_id, featured,
			sort_order, images, created_at, updated_at
		) VALUES (
			:id, :name, :slug, :description, :content, :dimensions, :weight, :material,
			:meta_title, :meta_description, :video_url, :category_id, :featured,
			:sort_order, :images, :created_at, :updated_at
		)`

	_, err = exec.NamedExecContext(ctx, query, row)
	if err != nil {
		if isUniqueViolation(err, "products", "slug") {
			return NewStoreError("CreateProduct", "product", product.Slug, "product with this slug already exists", ErrDuplicateSlug)
		}
		if isUniqueViolation(err, "products", "id") {
			return NewStoreError("CreateProduct", "product", product.ID, "product with this ID already exists", ErrDuplicateID)
		}
		return NewStoreError("CreateProduct", "product", product.ID, err.Error(), err)
	}
	return nil
}

func getProduct(ctx context.Context, exec executor, id string) (*domain.Product, error) {
	var row productRow
	err := exec.GetContext(ctx, &row, `SELECT * FROM products WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetProduct", "product", id, "product not found", ErrNotFound)
		}
		return nil, NewStoreError("GetProduct", "product", id, err.Error(), err)
	}
	return row.toDomain()
}

func getProductBySlug(ctx context.Context, exec executor, slug string) (*domain.Product, error) {
	var row productRow
	err := exec.GetContext(ctx, &row, `SELECT * FROM products WHERE slug = ?`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetProductBySlug", "product", slug, "product not found", ErrNotFound)
		}
		return nil, NewStoreError("GetProductBySlug", "product", slug, err.Error(), err)
	}
	return row.toDomain()
}

func updateProduct(ctx context.Context, exec executor, product *domain.Product) error {
	row, err := productToRow(product)
	if err != nil {
		return err
	}

	query := `
		UPDATE products SET
			name = :name,
			slug = :slug,
			description = :description,
			content = :content,
			dimensions = :dimensions,
			weight = :weight,
			material = :material,
			meta_title = :meta_title,
			meta_description = :meta_description,
			video_url = :video_url,
			category_id = :category_id,
			featured = :featured,
			sort_order = :sort_order,
			images = :images,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := exec.NamedExecContext(ctx, query, row)
	if err != nil {
		if isUniqueViolation(err, "products", "slug") {
			return NewStoreError("UpdateProduct", "product", product.Slug, "product with this slug already exists", ErrDuplicateSlug)
		}
		return NewStoreError("UpdateProduct", "product", product.ID, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("UpdateProduct", "product", product.ID, "product not found", ErrNotFound)
	}
	return nil
}

func deleteProduct(ctx context.Context, exec executor, id string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return NewStoreError("DeleteProduct", "product", id, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeleteProduct", "product", id, "product not found", ErrNotFound)
	}
	return nil
}

func listProducts(ctx context.Context, exec executor, filter ProductFilter) ([]domain.Product, error) {
	query := `SELECT * FROM products`
	var conditions []string
	var args []any

	if filter.CategoryID != "" {
		conditions = append(conditions, "category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.Featured != nil {
		conditions = append(conditions, "featured = ?")
		args = append(args, *filter.Featured)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY featured DESC, sort_order ASC, created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	var rows []productRow
	err := exec.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, NewStoreError("ListProducts", "product", "", err.Error(), err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		product, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, nil
}

// =============================================================================
// Post Operations
// =============================================================================

// postRow represents a post row in the database.
type postRow struct {
	ID              string  `db:"id"`
	Title           string  `db:"title"`
	Slug            string  `db:"slug"`
	Excerpt         string  `db:"excerpt"`
	Content         string  `db:"content"`
	Image           string  `db:"image"`
	Published       bool    `db:"published"`
	PublishedAt     *string `db:"published_at"`
	MetaTitle       string  `db:"meta_title"`
	MetaDescription string  `db:"meta_description"`
	CategoryID      string  `db:"category_id"`
	AuthorID        string  `db:"author_id"`
	CreatedAt       string  `db:"created_at"`
	UpdatedAt       string  `db:"updated_at"`
}

func (r *postRow) toDomain() *domain.Post {
	return &domain.Post{
		ID:              r.ID,
		Title:           r.Title,
		Slug:            r.Slug,
		Excerpt:         r.Excerpt,
		Content:         r.Content,
		Image:           r.Image,
		Published:       r.Published,
		PublishedAt:     parseTimePtr(r.PublishedAt),
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		CategoryID:      r.CategoryID,
		AuthorID:        r.AuthorID,
		CreatedAt:       parseTime(r.CreatedAt),
		UpdatedAt:       parseTime(r.UpdatedAt),
	}
}

func postToRow(p *domain.Post) map[string]any {
	return map[string]any{
		"id":               p.ID,
		"title":            p.Title,
		"slug":             p.Slug,
		"excerpt":          p.Excerpt,
		"content":          p.Content,
		"image":            p.Image,
		"published":        p.Published,
		"published_at":     formatTimePtr(p.PublishedAt),
		"meta_title":       p.MetaTitle,
		"meta_description": p.MetaDescription,
		"category_id":      p.CategoryID,
		"author_id":        p.AuthorID,
		"created_at":       formatTime(p.CreatedAt),
		"updated_at":       formatTime(p.UpdatedAt),
	}
}

func (s *SQLiteStore) CreatePost(ctx context.Context, post *domain.Post) error {
	return createPost(ctx, s.db, post)
}

func (s *SQLiteStore) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return getPost(ctx, s.db, id)
}

func (s *SQLiteStore) GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return getPostBySlug(ctx, s.db, slug)
}

func (s *SQLiteStore) UpdatePost(ctx context.Context, post *domain.Post) error {
	return updatePost(ctx, s.db, post)
}

func (s *SQLiteStore) DeletePost(ctx context.Context, id string) error {
	return deletePost(ctx, s.db, id)
}

func (s *SQLiteStore) ListPosts(ctx context.Context, filter PostFilter) ([]domain.Post, error) {
	return listPosts(ctx, s.db, filter)
}

func createPost(ctx context.Context, exec executor, post *domain.Post) error {
	query := `
		INSERT INTO posts (
			id, title, slug, excerpt, content, image, published, published_at,
			meta_title, meta_description, category_id, author_id, created_at, updated_at
		) VALUES (
			:id, :title, :slug, :excerpt, :content, :image, :published, :published_at,
			:meta_title, :meta_description, :category_id, :author_id, :created_at, :updated_at
		)`

	_, err := exec.NamedExecContext(ctx, query, postToRow(post))
	if err != nil {
		if isUniqueViolation(err, "posts", "slug") {
			return NewStoreError("CreatePost", "post", post.Slug, "post with this slug already exists", ErrDuplicateSlug)
		}
		if isUniqueViolation(err, "posts", "id") {
			return NewStoreError("CreatePost", "post", post.ID, "post with this ID already exists", ErrDuplicateID)
		}
		return NewStoreError("CreatePost", "post", post.ID, err.Error(), err)
	}
	return nil
}

func getPost(ctx context.Context, exec executor, id string) (*domain.Post, error) {
	var row postRow
	err := exec.GetContext(ctx, &row, `SELECT * FROM posts WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetPost", "post", id, "post not found", ErrNotFound)
		}
		return nil, NewStoreError("GetPost", "post", id, err.Error(), err)
	}
	return row.toDomain(), nil
}

func getPostBySlug(ctx context.Context, exec executor, slug string) (*domain.Post, error) {
	var row postRow
	err := exec.GetContext(ctx, &row, `SELECT * FROM posts WHERE slug = ?`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetPostBySlug", "post", slug, "post not found", ErrNotFound)
		}
		return nil, NewStoreError("GetPostBySlug", "post", slug, err.Error(), err)
	}
	return row.toDomain(), nil
}

func updatePost(ctx context.Context, exec executor, post *domain.Post) error {
	query := `
		UPDATE posts SET
			title = :title,
			slug = :slug,
			excerpt = :excerpt,
			content = :content,
			image = :image,
			published = :published,
			published_at = :published_at,
			meta_title = :meta_title,
			meta_description = :meta_description,
			category_id = :category_id,
			author_id = :author_id,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := exec.NamedExecContext(ctx, query, postToRow(post))
	if err != nil {
		if isUniqueViolation(err, "posts", "slug") {
			return NewStoreError("UpdatePost", "post", post.Slug, "post with this slug already exists", ErrDuplicateSlug)
		}
		return NewStoreError("UpdatePost", "post", post.ID, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("UpdatePost", "post", post.ID, "post not found", ErrNotFound)
	}
	return nil
}

func deletePost(ctx context.Context, exec executor, id string) error {
	result, err := exec.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return NewStoreError("DeletePost", "post", id, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeletePost", "post", id, "post not found", ErrNotFound)
	}
	return nil
}

func listPosts(ctx context.Context, exec executor, filter PostFilter) ([]domain.Post, error) {
	query := `SELECT * FROM posts`
	var conditions []string
	var args []any

	if filter.Published != nil {
		conditions = append(conditions, "published = ?")
		args = append(args, *filter.Published)
	}
	if filter.CategoryID != "" {
		conditions = append(conditions, "category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	var rows []postRow
	err := exec.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, NewStoreError("ListPosts", "post", "", err.Error(), err)
	}

	posts := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, *row.toDomain())
	}
	return posts, nil
}

// =============================================================================
// Transaction Support
// =============================================================================

func (s *SQLiteStore) WithTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return NewStoreError("WithTx", "", "", "failed to begin transaction", ErrTxFailed)
	}

	txS := &txSQLiteStore{tx: tx}

	if err := fn(txS); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return NewStoreError("WithTx", "", "", fmt.Sprintf("rollback failed after error: %v", err), ErrTxFailed)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return NewStoreError("WithTx", "", "", "failed to commit transaction", ErrTxFailed)
	}

	return nil
}
