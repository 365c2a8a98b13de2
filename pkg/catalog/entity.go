package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Product describes a catalog entry as the admin console creates it.
// Image holds the hosted URL returned by the media host.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Image       string    `json:"image"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand"`
	Price       float64   `json:"price"`
	SalePrice   float64   `json:"salePrice"`
	TotalStock  int       `json:"totalStock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

var ErrNotFound = errors.New("product not found")

// Repository is the persistence port for products.
type Repository interface {
	Create(ctx context.Context, p Product) error
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	List(ctx context.Context, limit, offset int) ([]Product, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
