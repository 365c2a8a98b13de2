package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase encapsulates product catalog operations.
type UseCase interface {
	Add(ctx context.Context, p Product) (Product, error)
	List(ctx context.Context, limit, offset int) ([]Product, error)
	Edit(ctx context.Context, id uuid.UUID, changes Product) (Product, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Add(ctx context.Context, p Product) (Product, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Category = strings.TrimSpace(p.Category)
	p.Brand = strings.TrimSpace(p.Brand)
	if p.Title == "" || p.Category == "" || p.Brand == "" {
		return Product{}, ErrValidation("title, category and brand are required")
	}
	if p.Image == "" {
		return Product{}, ErrValidation("image is required")
	}
	if p.Price < 0 || p.SalePrice < 0 || p.TotalStock < 0 {
		return Product{}, ErrValidation("price, salePrice and totalStock must not be negative")
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.repo.Create(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Product, error) {
	return s.repo.List(ctx, limit, offset)
}

// Edit applies the non-zero fields of changes over the stored product;
// absent fields keep their stored values.
func (s *service) Edit(ctx context.Context, id uuid.UUID, changes Product) (Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if v := strings.TrimSpace(changes.Title); v != "" {
		p.Title = v
	}
	if changes.Description != "" {
		p.Description = changes.Description
	}
	if v := strings.TrimSpace(changes.Category); v != "" {
		p.Category = v
	}
	if v := strings.TrimSpace(changes.Brand); v != "" {
		p.Brand = v
	}
	if changes.Price > 0 {
		p.Price = changes.Price
	}
	if changes.SalePrice > 0 {
		p.SalePrice = changes.SalePrice
	}
	if changes.TotalStock > 0 {
		p.TotalStock = changes.TotalStock
	}
	if changes.Image != "" {
		p.Image = changes.Image
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *service) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
