package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pshophq/pshop/internal/pshop/domain"
)

func TestCreateProductComputesDerivedFields(t *testing.T) {
	ctx := context.Background()
	svc := &InventoryService{Store: newSeededStore(t, "user-1")}

	created, err := svc.CreateProduct(ctx, "user-1", domain.Product{
		Name:         "Perfume X",
		PartnerPrice: 100,
		ResalePrice:  150,
		Margin:       9999, // client-sent margin is ignored
		Stock:        10,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, float64(50), created.Margin)
	require.False(t, created.CreatedAt.IsZero())
	require.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()
	svc := &InventoryService{Store: newTestStore(t)}

	_, err := svc.CreateProduct(ctx, "user-1", domain.Product{Name: "   "})
	require.ErrorIs(t, err, ErrValidation)
}

func TestProductPhotoFiltering(t *testing.T) {
	ctx := context.Background()
	svc := &InventoryService{Store: newSeededStore(t, "user-1")}

	longPhoto := strings.Repeat("a", 120)
	created, err := svc.CreateProduct(ctx, "user-1", domain.Product{
		Name:   "Perfume X",
		Photos: []string{longPhoto, "corrupt", strings.Repeat("b", 100)},
	})
	require.NoError(t, err)
	require.Equal(t, []string{longPhoto}, created.Photos, "entries of 100 chars or fewer are dropped on save")

	products, err := svc.ListProducts(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, []string{longPhoto}, products[0].Photos)
}

func TestCreateProductPayloadCap(t *testing.T) {
	ctx := context.Background()
	svc := &InventoryService{Store: newTestStore(t)}

	huge := strings.Repeat("x", maxPhotoPayloadBytes+1)
	_, err := svc.CreateProduct(ctx, "user-1", domain.Product{
		Name:   "Perfume X",
		Photos: []string{huge},
	})
	require.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	svc := &InventoryService{Store: newSeededStore(t, "user-1")}

	created, err := svc.CreateProduct(ctx, "user-1", domain.Product{
		Name:         "Perfume X",
		PartnerPrice: 100,
		ResalePrice:  150,
		Stock:        10,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(ctx, "user-1", domain.Product{
		ID:           created.ID,
		Name:         "Perfume X Deluxe",
		PartnerPrice: 110,
		ResalePrice:  180,
		Stock:        8,
	})
	require.NoError(t, err)
	require.Equal(t, "Perfume X Deluxe", updated.Name)
	require.Equal(t, float64(70), updated.Margin, "margin is recomputed on update")
	require.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Second, "creation time is preserved")
	require.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestProductTenantIsolation(t *testing.T) {
	ctx := context.Background()
	svc := &InventoryService{Store: newSeededStore(t, "user-a")}

	created, err := svc.CreateProduct(ctx, "user-a", domain.Product{Name: "Perfume X"})
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		_, err := svc.GetProduct(ctx, "user-b", created.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, "user-b")
		require.NoError(t, err)
		require.Empty(t, products)
	})

	t.Run("update", func(t *testing.T) {
		_, err := svc.UpdateProduct(ctx, "user-b", domain.Product{ID: created.ID, Name: "Stolen"})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		err := svc.DeleteProduct(ctx, "user-b", created.ID)
		require.ErrorIs(t, err, ErrNotFound)

		// Still visible to its owner.
		_, err = svc.GetProduct(ctx, "user-a", created.ID)
		require.NoError(t, err)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	svc := &InventoryService{Store: newSeededStore(t, "user-1")}

	created, err := svc.CreateProduct(ctx, "user-1", domain.Product{Name: "Perfume X"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, "user-1", created.ID))
	require.ErrorIs(t, svc.DeleteProduct(ctx, "user-1", created.ID), ErrNotFound)
}

func TestFilterPhotos(t *testing.T) {
	photos := []string{
		strings.Repeat("a", 50),
		strings.Repeat("b", 51),
		strings.Repeat("c", 100),
		strings.Repeat("d", 101),
	}

	// Thresholds are exclusive: an entry of exactly 50 or 100 chars is
	// still considered corrupt.
	require.Equal(t, photos[1:], filterPhotos(photos, minPhotoLenOnList))
	require.Equal(t, photos[3:], filterPhotos(photos, minPhotoLenOnSave))
	require.Empty(t, filterPhotos(nil, minPhotoLenOnList))

	t.Run("length is measured after trimming", func(t *testing.T) {
		padded := strings.Repeat(" ", 60) + strings.Repeat("x", 50)
		require.Empty(t, filterPhotos([]string{padded}, minPhotoLenOnList))

		kept := "  " + strings.Repeat("x", 51) + "  "
		require.Equal(t, []string{kept}, filterPhotos([]string{kept}, minPhotoLenOnList),
			"entries that pass are kept untrimmed")
	})
}
