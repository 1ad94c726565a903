package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Slugify Tests
// =============================================================================

func TestSlugify_Basic(t *testing.T) {
	result := Slugify("Hello World")
	assert.Equal(t, "hello-world", result)
}

func TestSlugify_TurkishLetters(t *testing.T) {
	result := Slugify("Şişli Çağlayan")
	assert.Equal(t, "sisli-caglayan", result)
}

func TestSlugify_TurkishUppercase(t *testing.T) {
	result := Slugify("İstanbul Ölçü")
	assert.Equal(t, "istanbul-olcu", result)
}

func TestSlugify_ProductName(t *testing.T) {
	result := Slugify("40x40 Kare Beton Kalıbı")
	assert.Equal(t, "40x40-kare-beton-kalibi", result)
}

func TestSlugify_CollapsesHyphens(t *testing.T) {
	result := Slugify("  A    B--C  ")
	assert.Equal(t, "a-b-c", result)
}

func TestSlugify_OnlyPunctuation(t *testing.T) {
	result := Slugify("!!!")
	assert.Equal(t, "", result)
}

func TestSlugify_Deterministic(t *testing.T) {
	first := Slugify("Plastik Kalıplar & Aksesuar")
	second := Slugify("Plastik Kalıplar & Aksesuar")
	assert.Equal(t, first, second)
}

func TestSlugify_IdempotentOnSlugs(t *testing.T) {
	// Feeding a generated slug back in must be a no-op.
	slug := Slugify("Bordür Kalıpları 30cm")
	assert.Equal(t, slug, Slugify(slug))
}

func TestSlugify_TurkishAdjacentToHyphen(t *testing.T) {
	// Transliteration next to an existing hyphen must not leave doubled
	// hyphens behind.
	result := Slugify("ış-ık")
	assert.Equal(t, "is-ik", result)
	assert.Equal(t, result, Slugify(result))
}

// =============================================================================
// Table-Driven Tests
// =============================================================================

func TestSlugify_TableDriven(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"basic", "Hello World", "hello-world"},
		{"turkish lowercase", "ürün çeşitleri", "urun-cesitleri"},
		{"turkish uppercase", "ÇİMENTO ŞARTLARI", "cimento-sartlari"},
		{"dotless i", "Kalıp", "kalip"},
		{"multiple spaces", "hello   world", "hello-world"},
		{"leading and trailing spaces", " trim me ", "trim-me"},
		{"hyphen runs", "a--b---c", "a-b-c"},
		{"leading hyphens", "--start", "start"},
		{"trailing hyphens", "end--", "end"},
		{"punctuation stripped", "My App 2.0!", "my-app-20"},
		{"underscores kept", "hello_world", "hello_world"},
		{"non turkish accents dropped", "crème brûlée", "crme-brle"},
		{"empty", "", ""},
		{"only punctuation", "?!.,", ""},
		{"numbers", "123", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
