package service

import (
	"context"
	"errors"
	"time"

	"github.com/pshophq/pshop/internal/pshop/domain"
	"github.com/pshophq/pshop/internal/pshop/store"
)

type ThemeService struct {
	Store store.Store
}

// SaveTheme upserts the user's single theme record.
func (s *ThemeService) SaveTheme(ctx context.Context, userID string, colors map[string]string, mode string) (domain.Theme, error) {
	if mode != "dark" {
		mode = "light"
	}
	if colors == nil {
		colors = map[string]string{}
	}

	t := domain.Theme{
		UserID:    userID,
		Colors:    colors,
		Mode:      mode,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.Store.Themes().SaveTheme(ctx, t); err != nil {
		return domain.Theme{}, err
	}
	return t, nil
}

// GetTheme returns the user's saved theme, or ErrNotFound when none was
// ever saved. Callers treat that as "use client defaults".
func (s *ThemeService) GetTheme(ctx context.Context, userID string) (domain.Theme, error) {
	t, err := s.Store.Themes().GetTheme(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Theme{}, ErrNotFound
		}
		return domain.Theme{}, err
	}
	return t, nil
}
