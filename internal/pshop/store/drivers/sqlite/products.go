package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/pshophq/pshop/internal/pshop/domain"
)

type productsRepo struct {
	db sqlx.ExtContext
}

const productColumns = `id, user_id, name, description, category, partner_price,
	resale_price, margin, stock, photos, specifications, created_at, updated_at`

func (r *productsRepo) CreateProduct(ctx context.Context, p domain.Product) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (`+productColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Name, p.Description, p.Category, p.PartnerPrice,
		p.ResalePrice, p.Margin, p.Stock, encodeJSON(p.Photos), encodeJSON(p.Specs),
		p.CreatedAt, p.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *productsRepo) GetProduct(ctx context.Context, userID, id string) (domain.Product, error) {
	var row productRow
	err := sqlx.GetContext(ctx, r.db, &row,
		`SELECT `+productColumns+` FROM products WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return domain.Product{}, mapNotFound(err)
	}
	return mapProduct(row), nil
}

func (r *productsRepo) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	var rows []productRow
	err := sqlx.SelectContext(ctx, r.db, &rows,
		`SELECT `+productColumns+` FROM products WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, mapProduct(row))
	}
	return products, nil
}

func (r *productsRepo) UpdateProduct(ctx context.Context, p domain.Product) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET name = ?, description = ?, category = ?,
		    partner_price = ?, resale_price = ?, margin = ?, stock = ?,
		    photos = ?, specifications = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		p.Name, p.Description, p.Category, p.PartnerPrice, p.ResalePrice,
		p.Margin, p.Stock, encodeJSON(p.Photos), encodeJSON(p.Specs), p.UpdatedAt,
		p.ID, p.UserID,
	)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *productsRepo) DeleteProduct(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM products WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

// AdjustStock decrements stock, clamping at zero so an over-sized sale can
// never drive stock negative.
func (r *productsRepo) AdjustStock(ctx context.Context, userID, id string, qty int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET stock = MAX(stock - ?, 0) WHERE id = ? AND user_id = ?`,
		qty, id, userID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}
