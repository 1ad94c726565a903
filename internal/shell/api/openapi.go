package api

import (
	"github.com/kalipsan/sitecms/internal/core/domain"
	"github.com/kalipsan/sitecms/internal/shell/api/openapi"
)

// newSpecGenerator registers every API resource for reflective OpenAPI
// generation. The document is served at /api/v1/openapi.json.
func newSpecGenerator() *openapi.Generator {
	g := openapi.NewGenerator(
		openapi.WithTitle("Site Content API"),
		openapi.WithDescription("Content management API for the company site: catalog, blog, media and settings"),
		openapi.WithVersion("1.0.0"),
	)

	g.RegisterResource(openapi.ResourceInfo{
		Name:        "categories",
		Model:       domain.Category{},
		LookupParam: "slug",
	})
	g.RegisterResource(openapi.ResourceInfo{
		Name:        "products",
		Model:       domain.Product{},
		LookupParam: "slug",
	})
	g.RegisterResource(openapi.ResourceInfo{
		Name:        "posts",
		Model:       domain.Post{},
		LookupParam: "slug",
	})
	g.RegisterResource(openapi.ResourceInfo{
		Name:  "references",
		Model: domain.Reference{},
	})
	g.RegisterResource(openapi.ResourceInfo{
		Name:  "slides",
		Model: domain.HeroSlide{},
	})
	g.RegisterResource(openapi.ResourceInfo{
		Name:  "catalogs",
		Model: domain.Catalog{},
	})

	g.RegisterResource(openapi.ResourceInfo{
		Name:           "categories",
		Model:          domain.Category{},
		LookupParam:    "id",
		SupportsCreate: true,
		SupportsUpdate: true,
		SupportsDelete: true,
		AdminOnly:      true,
	})
	g.RegisterResource(openapi.ResourceInfo{
		Name:           "products",
		Model:          domain.Product{},
		LookupParam:    "id",
		SupportsCreate: true,
		SupportsUpdate: true,
		SupportsDelete: true,
		AdminOnly:      true,
	})
	g.RegisterResource(openapi.ResourceInfo{
		Name:           "posts",
		Model:          domain.Post{},
		LookupParam:    "id",
		SupportsCreate: true,
		SupportsUpdate: true,
		SupportsDelete: true,
		AdminOnly:      true,
	})
	g.RegisterResource(openapi.ResourceInfo{
		Name:           "references",
		Model:          domain.Reference{},
		LookupParam:    "id",
		SupportsCreate: true,
		SupportsUpdate: true,
		SupportsDelete: true,
		AdminOnly:      true,
	})
	g.RegisterResource(openapi.ResourceInfo{
		Name:           "slides",
		Model:          domain.HeroSlide{},
		LookupParam:    "id",
		SupportsCreate: true,
		SupportsUpdate: true,
		SupportsDelete: true,
		AdminOnly:      true,
	})
	g.RegisterResource(openapi.ResourceInfo{
		Name:           "catalogs",
		Model:          domain.Catalog{},
		LookupParam:    "id",
		SupportsCreate: true,
		SupportsUpdate: true,
		SupportsDelete: true,
		AdminOnly:      true,
	})
	g.RegisterResource(openapi.ResourceInfo{
		Name:           "messages",
		Model:          domain.ContactMessage{},
		LookupParam:    "id",
		SupportsDelete: true,
		AdminOnly:      true,
	})

	return g
}
