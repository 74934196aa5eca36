package ports

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
)

// CatalogRepository gives access to businesses and their products.
type CatalogRepository interface {
	AddBusiness(ctx context.Context, business *catalog.Business) error
	AddProduct(ctx context.Context, product *catalog.Product) error

	// GetBusiness fails with errs.ErrObjectNotFound for an unknown business.
	GetBusiness(ctx context.Context, id kernel.UUID) (*catalog.Business, error)

	// GetProduct fails with errs.ErrObjectNotFound for an unknown product.
	GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// FindProducts returns the products among ids that exist. Missing IDs are
	// silently skipped; callers decide what a missing product means.
	FindProducts(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error)
}
