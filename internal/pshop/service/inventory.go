package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/pshophq/pshop/internal/pshop/domain"
	"github.com/pshophq/pshop/internal/pshop/store"
	"github.com/pshophq/pshop/pkg/idx"
	"github.com/pshophq/pshop/pkg/slogx"
)

const (
	// maxPhotoPayloadBytes caps the serialized photos column per product.
	maxPhotoPayloadBytes = 16 << 20

	// Photo entries are base64 image data; anything whose trimmed length
	// does not exceed the threshold is a corrupt placeholder. The save
	// threshold is stricter than the read threshold so rows written by
	// older clients still list cleanly.
	minPhotoLenOnSave = 100
	minPhotoLenOnList = 50
)

type InventoryService struct {
	Store store.Store
}

// CreateProduct inserts a product for the user. Margin is recomputed
// server-side; the client-sent value is ignored.
func (s *InventoryService) CreateProduct(ctx context.Context, userID string, p domain.Product) (domain.Product, error) {
	log := slogx.FromContext(ctx)

	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.Stock < 0 {
		return domain.Product{}, ErrValidation
	}

	p.Photos = filterPhotos(p.Photos, minPhotoLenOnSave)
	if err := checkPhotoPayload(p.Photos); err != nil {
		return domain.Product{}, err
	}

	now := time.Now().UTC()
	p.ID = idx.New().String()
	p.UserID = userID
	p.Margin = p.ResalePrice - p.PartnerPrice
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.Store.Products().CreateProduct(ctx, p); err != nil {
		log.Error("failed to create product", slog.Any("error", err))
		return domain.Product{}, err
	}

	log.Info("product created",
		slog.String("product_id", p.ID),
		slog.String("user_id", userID),
	)
	return p, nil
}

// GetProduct fetches one owned product. Products belonging to another user
// are indistinguishable from missing ones.
func (s *InventoryService) GetProduct(ctx context.Context, userID, id string) (domain.Product, error) {
	p, err := s.Store.Products().GetProduct(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrNotFound
		}
		return domain.Product{}, err
	}
	p.Photos = filterPhotos(p.Photos, minPhotoLenOnList)
	return p, nil
}

// ListProducts returns all products for the user, newest first.
func (s *InventoryService) ListProducts(ctx context.Context, userID string) ([]domain.Product, error) {
	products, err := s.Store.Products().ListProducts(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].Photos = filterPhotos(products[i].Photos, minPhotoLenOnList)
	}
	return products, nil
}

// UpdateProduct replaces the mutable fields of an owned product. The
// creation timestamp is preserved and margin recomputed.
func (s *InventoryService) UpdateProduct(ctx context.Context, userID string, p domain.Product) (domain.Product, error) {
	log := slogx.FromContext(ctx)

	p.Name = strings.TrimSpace(p.Name)
	if p.ID == "" || p.Name == "" {
		return domain.Product{}, ErrValidation
	}

	existing, err := s.Store.Products().GetProduct(ctx, userID, p.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrNotFound
		}
		return domain.Product{}, err
	}

	p.Photos = filterPhotos(p.Photos, minPhotoLenOnSave)
	if err := checkPhotoPayload(p.Photos); err != nil {
		return domain.Product{}, err
	}

	p.UserID = userID
	p.Margin = p.ResalePrice - p.PartnerPrice
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	if err := s.Store.Products().UpdateProduct(ctx, p); err != nil {
		log.Error("failed to update product",
			slog.String("product_id", p.ID),
			slog.Any("error", err),
		)
		return domain.Product{}, err
	}

	log.Info("product updated",
		slog.String("product_id", p.ID),
		slog.String("user_id", userID),
	)
	return p, nil
}

// DeleteProduct removes an owned product. Sales referencing it keep their
// recorded figures.
func (s *InventoryService) DeleteProduct(ctx context.Context, userID, id string) error {
	if id == "" {
		return ErrValidation
	}
	err := s.Store.Products().DeleteProduct(ctx, userID, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// filterPhotos drops entries whose trimmed length is not strictly greater
// than minLen. Short entries are corrupt placeholders left behind by
// interrupted uploads.
func filterPhotos(photos []string, minLen int) []string {
	filtered := make([]string, 0, len(photos))
	for _, p := range photos {
		if len(strings.TrimSpace(p)) > minLen {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func checkPhotoPayload(photos []string) error {
	if len(photos) == 0 {
		return nil
	}
	payload, err := json.Marshal(photos)
	if err != nil {
		return err
	}
	if len(payload) > maxPhotoPayloadBytes {
		return ErrPayloadTooLarge
	}
	return nil
}
