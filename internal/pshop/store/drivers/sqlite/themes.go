package sqlite

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"github.com/pshophq/pshop/internal/pshop/domain"
)

type themesRepo struct {
	db sqlx.ExtContext
}

func (r *themesRepo) SaveTheme(ctx context.Context, t domain.Theme) error {
	payload, err := json.Marshal(struct {
		Colors map[string]string `json:"colors"`
		Mode   string            `json:"mode"`
	}{Colors: t.Colors, Mode: t.Mode})
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO themes (user_id, theme_data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET theme_data = excluded.theme_data,
		     updated_at = excluded.updated_at`,
		t.UserID, string(payload), t.UpdatedAt,
	)
	return err
}

func (r *themesRepo) GetTheme(ctx context.Context, userID string) (domain.Theme, error) {
	var row themeRow
	err := sqlx.GetContext(ctx, r.db, &row,
		`SELECT user_id, theme_data, updated_at FROM themes WHERE user_id = ?`, userID)
	if err != nil {
		return domain.Theme{}, mapNotFound(err)
	}
	return mapTheme(row), nil
}
