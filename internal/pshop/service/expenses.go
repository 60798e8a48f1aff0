package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/pshophq/pshop/internal/pshop/domain"
	"github.com/pshophq/pshop/internal/pshop/store"
	"github.com/pshophq/pshop/pkg/idx"
	"github.com/pshophq/pshop/pkg/slogx"
)

type ExpenseService struct {
	Store store.Store
}

// CreateExpense records an expense for the user.
func (s *ExpenseService) CreateExpense(ctx context.Context, userID string, in domain.Expense) (domain.Expense, error) {
	log := slogx.FromContext(ctx)

	in.Category = strings.TrimSpace(in.Category)
	if in.Amount <= 0 || in.Category == "" {
		return domain.Expense{}, ErrValidation
	}

	now := time.Now().UTC()
	in.ID = idx.New().String()
	in.UserID = userID
	if in.ExpenseDate.IsZero() {
		in.ExpenseDate = now
	}
	in.CreatedAt = now

	if err := s.Store.Expenses().CreateExpense(ctx, in); err != nil {
		log.Error("failed to create expense", slog.Any("error", err))
		return domain.Expense{}, err
	}

	log.Info("expense recorded",
		slog.String("expense_id", in.ID),
		slog.String("user_id", userID),
	)
	return in, nil
}

// ListExpenses returns all expenses for the user, most recent first.
func (s *ExpenseService) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	return s.Store.Expenses().ListExpenses(ctx, userID)
}

// DeleteExpense removes an owned expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, id string) error {
	if id == "" {
		return ErrValidation
	}
	err := s.Store.Expenses().DeleteExpense(ctx, userID, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
