package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/pshophq/pshop/internal/pshop/domain"
)

type usersRepo struct {
	db sqlx.ExtContext
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, name, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.PasswordHash, u.Name, u.CreatedAt,
	)
	return mapConflict(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, r.db, &row,
		`SELECT id, username, password_hash, name, created_at FROM users WHERE id = ?`, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, r.db, &row,
		`SELECT id, username, password_hash, name, created_at FROM users WHERE username = ?`, username)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ? WHERE id = ?`, newHash, userID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, r.db, &count, `SELECT COUNT(*) FROM users`)
	return count, err
}
