package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yohanpasi/storefront/pkg/catalog"
)

// ProductRepository stores catalog products.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) (*ProductRepository, error) {
	r := &ProductRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProductRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS products (
	id UUID PRIMARY KEY,
	image TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL,
	brand TEXT NOT NULL,
	price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
	sale_price DOUBLE PRECISION NOT NULL DEFAULT 0,
	total_stock INTEGER NOT NULL CHECK (total_stock >= 0),
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products (category);
`)
	return err
}

func (r *ProductRepository) Create(ctx context.Context, p catalog.Product) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO products (id, image, title, description, category, brand, price, sale_price, total_stock, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, p.ID, p.Image, p.Title, p.Description, p.Category, p.Brand, p.Price, p.SalePrice, p.TotalStock, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (catalog.Product, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, image, title, description, category, brand, price, sale_price, total_stock, created_at, updated_at
FROM products WHERE id = $1
`, id)
	return scanProduct(row)
}

func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]catalog.Product, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, image, title, description, category, brand, price, sale_price, total_stock, created_at, updated_at
FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, p catalog.Product) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE products
SET image = $2, title = $3, description = $4, category = $5, brand = $6,
    price = $7, sale_price = $8, total_stock = $9, updated_at = $10
WHERE id = $1
`, p.ID, p.Image, p.Title, p.Description, p.Category, p.Brand, p.Price, p.SalePrice, p.TotalStock, p.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (catalog.Product, error) {
	var p catalog.Product
	var createdAt, updatedAt time.Time
	if err := row.Scan(&p.ID, &p.Image, &p.Title, &p.Description, &p.Category, &p.Brand,
		&p.Price, &p.SalePrice, &p.TotalStock, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Product{}, catalog.ErrNotFound
		}
		return catalog.Product{}, err
	}
	p.CreatedAt = createdAt.UTC()
	p.UpdatedAt = updatedAt.UTC()
	return p, nil
}
