package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/pshophq/pshop/internal/pshop/domain"
)

type expensesRepo struct {
	db sqlx.ExtContext
}

const expenseColumns = `id, user_id, amount, category, supplier, description,
	expense_date, created_at`

func (r *expensesRepo) CreateExpense(ctx context.Context, e domain.Expense) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (`+expenseColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Amount, e.Category, e.Supplier, e.Description,
		e.ExpenseDate, e.CreatedAt,
	)
	return mapConflict(err)
}

func (r *expensesRepo) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	var rows []expenseRow
	err := sqlx.SelectContext(ctx, r.db, &rows,
		`SELECT `+expenseColumns+` FROM expenses WHERE user_id = ? ORDER BY expense_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	expenses := make([]domain.Expense, 0, len(rows))
	for _, row := range rows {
		expenses = append(expenses, mapExpense(row))
	}
	return expenses, nil
}

func (r *expensesRepo) DeleteExpense(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM expenses WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}
