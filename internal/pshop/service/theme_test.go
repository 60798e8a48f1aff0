package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveThemeUpserts(t *testing.T) {
	ctx := context.Background()
	svc := &ThemeService{Store: newSeededStore(t, "user-1")}

	_, err := svc.SaveTheme(ctx, "user-1", map[string]string{"primary": "#111111"}, "dark")
	require.NoError(t, err)

	saved, err := svc.SaveTheme(ctx, "user-1", map[string]string{"primary": "#222222"}, "light")
	require.NoError(t, err)

	got, err := svc.GetTheme(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, saved.Colors, got.Colors, "latest save wins")
	require.Equal(t, "light", got.Mode)
}

func TestSaveThemeNormalizesMode(t *testing.T) {
	ctx := context.Background()
	svc := &ThemeService{Store: newSeededStore(t, "user-1")}

	saved, err := svc.SaveTheme(ctx, "user-1", nil, "neon")
	require.NoError(t, err)
	require.Equal(t, "light", saved.Mode, "unknown modes fall back to light")
	require.NotNil(t, saved.Colors)

	saved, err = svc.SaveTheme(ctx, "user-1", nil, "dark")
	require.NoError(t, err)
	require.Equal(t, "dark", saved.Mode)
}

func TestGetThemeMissing(t *testing.T) {
	ctx := context.Background()
	svc := &ThemeService{Store: newTestStore(t)}

	_, err := svc.GetTheme(ctx, "user-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestThemeTenantIsolation(t *testing.T) {
	ctx := context.Background()
	svc := &ThemeService{Store: newSeededStore(t, "user-a")}

	_, err := svc.SaveTheme(ctx, "user-a", map[string]string{"primary": "#111111"}, "dark")
	require.NoError(t, err)

	_, err = svc.GetTheme(ctx, "user-b")
	require.ErrorIs(t, err, ErrNotFound)
}
