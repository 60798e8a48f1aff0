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

type SalesService struct {
	Store store.Store
}

// CreateSale records a sale and decrements the linked product's stock in a
// single transaction, so a failed insert never leaves stock reduced.
//
// Total is always recomputed from quantity and unit price. Profit is
// recomputed from the owning product's margin when the product still
// exists; otherwise the client-sent value stands, since the product may
// have been deleted after the sale was made on the client.
func (s *SalesService) CreateSale(ctx context.Context, userID string, in domain.Sale) (domain.Sale, error) {
	log := slogx.FromContext(ctx)

	in.ProductName = strings.TrimSpace(in.ProductName)
	if in.ProductName == "" || in.Quantity <= 0 || in.UnitPrice < 0 {
		return domain.Sale{}, ErrValidation
	}

	now := time.Now().UTC()
	in.ID = idx.New().String()
	in.UserID = userID
	in.Total = float64(in.Quantity) * in.UnitPrice
	if in.SaleDate.IsZero() {
		in.SaleDate = now
	}
	in.CreatedAt = now

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if in.ProductID != nil && *in.ProductID != "" {
			prod, err := tx.Products().GetProduct(ctx, userID, *in.ProductID)
			switch {
			case err == nil:
				in.Profit = prod.Margin * float64(in.Quantity)
				if err := tx.Products().AdjustStock(ctx, userID, prod.ID, in.Quantity); err != nil {
					return err
				}
			case errors.Is(err, store.ErrNotFound):
				// Product gone; keep the client-sent profit and record the
				// sale anyway.
			default:
				return err
			}
		}
		return tx.Sales().CreateSale(ctx, in)
	})
	if err != nil {
		log.Error("failed to create sale", slog.Any("error", err))
		return domain.Sale{}, err
	}

	log.Info("sale recorded",
		slog.String("sale_id", in.ID),
		slog.String("user_id", userID),
		slog.Int("quantity", in.Quantity),
	)
	return in, nil
}

// ListSales returns all sales for the user, most recent sale date first.
func (s *SalesService) ListSales(ctx context.Context, userID string) ([]domain.Sale, error) {
	return s.Store.Sales().ListSales(ctx, userID)
}
