// Package validation contains pure form-level checks used by the API layer
// before any store write is attempted.
package validation

import "github.com/kalipsan/sitecms/internal/core/domain"

// =============================================================================
// Content Form Validation
// =============================================================================

// ValidateCategoryFields validates required fields for category create/update.
// Returns the offending field name and a user-facing message, or empty
// strings when the form is valid.
func ValidateCategoryFields(name string) (field, message string) {
	if name == "" {
		return "name", "name is required"
	}
	if domain.Slugify(name) == "" {
		return "name", "name does not produce a valid URL slug"
	}
	return "", ""
}

// ValidateProductFields validates required fields for product create/update.
func ValidateProductFields(name, categoryID string) (field, message string) {
	if name == "" {
		return "name", "name is required"
	}
	if domain.Slugify(name) == "" {
		return "name", "name does not produce a valid URL slug"
	}
	if categoryID == "" {
		return "category_id", "category_id is required"
	}
	return "", ""
}

// ValidatePostFields validates required fields for post create/update.
func ValidatePostFields(title, content string) (field, message string) {
	if title == "" {
		return "title", "title is required"
	}
	if domain.Slugify(title) == "" {
		return "title", "title does not produce a valid URL slug"
	}
	if content == "" {
		return "content", "content is required"
	}
	return "", ""
}

// ValidateContactFields validates the public contact form.
func ValidateContactFields(name, email, message string) (field, msg string) {
	if name == "" {
		return "name", "name is required"
	}
	if email == "" {
		return "email", "email is required"
	}
	if message == "" {
		return "message", "message is required"
	}
	return "", ""
}

// ValidateLoginFields validates the admin login form.
func ValidateLoginFields(email, password string) (field, message string) {
	if email == "" {
		return "email", "email is required"
	}
	if password == "" {
		return "password", "password is required"
	}
	return "", ""
}

// CanDeleteCategory checks whether a category with the given product count
// can be removed. Categories still referenced by products cannot be deleted.
func CanDeleteCategory(productCount int) (allowed bool, reason string) {
	if productCount > 0 {
		return false, "category still has products"
	}
	return true, ""
}
