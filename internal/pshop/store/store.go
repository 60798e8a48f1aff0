package store

import (
	"context"
	"errors"
	"time"

	"github.com/pshophq/pshop/internal/pshop/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep concerns tidy and let tests swap a
// single repo without faking the whole store.
type Store interface {
	Users() Users
	Sessions() Sessions
	Products() Products
	Sales() Sales
	Expenses() Expenses
	Themes() Themes

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store with explicit Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user. Returns ErrAlreadyExists if the
	// username is taken (usernames are stored lower-cased).
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername expects an already lower-cased username.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// UpdatePasswordHash sets the password hash. Returns ErrNotFound for an
	// unknown user id.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	CountUsers(ctx context.Context) (int, error)
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSession returns the session by token regardless of expiry; callers
	// decide what a live session means.
	GetSession(ctx context.Context, token string) (domain.Session, error)

	DeleteSession(ctx context.Context, token string) error
	DeleteSessionsForUser(ctx context.Context, userID string) error

	// DeleteExpiredSessions removes every session with expires_at < now.
	// Used both for the lazy sweep on lookup and periodic housekeeping.
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

type Products interface {
	CreateProduct(ctx context.Context, p domain.Product) error

	// GetProduct and the mutating operations scope by owner: a product that
	// exists but belongs to another user yields ErrNotFound.
	GetProduct(ctx context.Context, userID, id string) (domain.Product, error)
	ListProducts(ctx context.Context, userID string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) error
	DeleteProduct(ctx context.Context, userID, id string) error

	// AdjustStock decrements stock by qty, clamping at zero.
	AdjustStock(ctx context.Context, userID, id string, qty int) error
}

type Sales interface {
	CreateSale(ctx context.Context, s domain.Sale) error
	ListSales(ctx context.Context, userID string) ([]domain.Sale, error)
}

type Expenses interface {
	CreateExpense(ctx context.Context, e domain.Expense) error
	ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error)
	DeleteExpense(ctx context.Context, userID, id string) error
}

type Themes interface {
	// SaveTheme upserts the single theme row for a user.
	SaveTheme(ctx context.Context, t domain.Theme) error

	// GetTheme returns ErrNotFound when the user has never saved a theme.
	GetTheme(ctx context.Context, userID string) (domain.Theme, error)
}
