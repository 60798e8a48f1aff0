package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/pshophq/pshop/internal/pshop/domain"
)

type salesRepo struct {
	db sqlx.ExtContext
}

const saleColumns = `id, user_id, product_id, product_name, quantity, unit_price,
	total, profit, client_name, client_phone, sale_date, created_at`

func (r *salesRepo) CreateSale(ctx context.Context, s domain.Sale) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sales (`+saleColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, mapOptionalString(s.ProductID), s.ProductName,
		s.Quantity, s.UnitPrice, s.Total, s.Profit,
		s.ClientName, s.ClientPhone, s.SaleDate, s.CreatedAt,
	)
	return mapConflict(err)
}

func (r *salesRepo) ListSales(ctx context.Context, userID string) ([]domain.Sale, error) {
	var rows []saleRow
	err := sqlx.SelectContext(ctx, r.db, &rows,
		`SELECT `+saleColumns+` FROM sales WHERE user_id = ? ORDER BY sale_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	sales := make([]domain.Sale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, mapSale(row))
	}
	return sales, nil
}
