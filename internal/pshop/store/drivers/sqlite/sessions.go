package sqlite

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pshophq/pshop/internal/pshop/domain"
)

type sessionsRepo struct {
	db sqlx.ExtContext
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, username, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.Username, s.CreatedAt, s.ExpiresAt,
	)
	return mapConflict(err)
}

func (r *sessionsRepo) GetSession(ctx context.Context, token string) (domain.Session, error) {
	var row sessionRow
	err := sqlx.GetContext(ctx, r.db, &row,
		`SELECT id, user_id, username, created_at, expires_at FROM sessions WHERE id = ?`, token)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return mapSession(row), nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, token)
	return err
}

func (r *sessionsRepo) DeleteSessionsForUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, now)
	return err
}
