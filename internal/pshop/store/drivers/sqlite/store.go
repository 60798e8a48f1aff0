package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/pshophq/pshop/internal/pshop/domain"
	"github.com/pshophq/pshop/internal/pshop/store"
)

type Store struct {
	db  *sqlx.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithTx executes fn within a transaction, automatically handling
// commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	t := newTx(tx)

	// Rollback is safe to call after commit; ensures cleanup on panic or
	// early error return.
	defer func() {
		_ = t.Rollback()
	}()

	if err := fn(t); err != nil {
		return err
	}
	return t.Commit()
}

func (s *Store) Users() store.Users       { return &usersRepo{db: s.db} }
func (s *Store) Sessions() store.Sessions { return &sessionsRepo{db: s.db} }
func (s *Store) Products() store.Products { return &productsRepo{db: s.db} }
func (s *Store) Sales() store.Sales       { return &salesRepo{db: s.db} }
func (s *Store) Expenses() store.Expenses { return &expensesRepo{db: s.db} }
func (s *Store) Themes() store.Themes     { return &themesRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConflict translates a sqlite unique-constraint violation into
// store.ErrAlreadyExists. The modernc driver only exposes the constraint
// failure through the error text.
func mapConflict(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

// requireRowsAffected maps a zero-row UPDATE/DELETE to ErrNotFound. Combined
// with the `AND user_id = ?` predicates this is what turns a cross-tenant
// access into a plain not-found.
func requireRowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullString(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// decodeStringList parses a JSON array column, dropping anything that is not
// a string. A corrupt column decodes to an empty slice rather than failing
// the row.
func decodeStringList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return []string{}
	}
	var entries []any
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// decodeStringMap parses a JSON object column of string values, skipping
// non-string values. Corrupt columns decode to an empty map.
func decodeStringMap(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return map[string]string{}
	}
	var entries map[string]any
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(entries))
	for k, v := range entries {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func encodeJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

type userRow struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	CreatedAt    time.Time `db:"created_at"`
}

func mapUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}

type sessionRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

func mapSession(row sessionRow) domain.Session {
	return domain.Session{
		ID:        row.ID,
		UserID:    row.UserID,
		Username:  row.Username,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}
}

type productRow struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	Category     string    `db:"category"`
	PartnerPrice float64   `db:"partner_price"`
	ResalePrice  float64   `db:"resale_price"`
	Margin       float64   `db:"margin"`
	Stock        int       `db:"stock"`
	Photos       string    `db:"photos"`
	Specs        string    `db:"specifications"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func mapProduct(row productRow) domain.Product {
	return domain.Product{
		ID:           row.ID,
		UserID:       row.UserID,
		Name:         row.Name,
		Description:  row.Description,
		Category:     row.Category,
		PartnerPrice: row.PartnerPrice,
		ResalePrice:  row.ResalePrice,
		Margin:       row.Margin,
		Stock:        row.Stock,
		Photos:       decodeStringList(row.Photos),
		Specs:        decodeStringMap(row.Specs),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

type saleRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	ProductID   sql.NullString `db:"product_id"`
	ProductName string         `db:"product_name"`
	Quantity    int            `db:"quantity"`
	UnitPrice   float64        `db:"unit_price"`
	Total       float64        `db:"total"`
	Profit      float64        `db:"profit"`
	ClientName  string         `db:"client_name"`
	ClientPhone string         `db:"client_phone"`
	SaleDate    time.Time      `db:"sale_date"`
	CreatedAt   time.Time      `db:"created_at"`
}

func mapSale(row saleRow) domain.Sale {
	return domain.Sale{
		ID:          row.ID,
		UserID:      row.UserID,
		ProductID:   mapNullString(row.ProductID),
		ProductName: row.ProductName,
		Quantity:    row.Quantity,
		UnitPrice:   row.UnitPrice,
		Total:       row.Total,
		Profit:      row.Profit,
		ClientName:  row.ClientName,
		ClientPhone: row.ClientPhone,
		SaleDate:    row.SaleDate,
		CreatedAt:   row.CreatedAt,
	}
}

type expenseRow struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Amount      float64   `db:"amount"`
	Category    string    `db:"category"`
	Supplier    string    `db:"supplier"`
	Description string    `db:"description"`
	ExpenseDate time.Time `db:"expense_date"`
	CreatedAt   time.Time `db:"created_at"`
}

func mapExpense(row expenseRow) domain.Expense {
	return domain.Expense{
		ID:          row.ID,
		UserID:      row.UserID,
		Amount:      row.Amount,
		Category:    row.Category,
		Supplier:    row.Supplier,
		Description: row.Description,
		ExpenseDate: row.ExpenseDate,
		CreatedAt:   row.CreatedAt,
	}
}

type themeRow struct {
	UserID    string    `db:"user_id"`
	ThemeData string    `db:"theme_data"`
	UpdatedAt time.Time `db:"updated_at"`
}

func mapTheme(row themeRow) domain.Theme {
	var data struct {
		Colors map[string]string `json:"colors"`
		Mode   string            `json:"mode"`
	}
	// Corrupt theme payloads decode to an empty theme rather than erroring.
	_ = json.Unmarshal([]byte(row.ThemeData), &data)
	if data.Colors == nil {
		data.Colors = map[string]string{}
	}
	return domain.Theme{
		UserID:    row.UserID,
		Colors:    data.Colors,
		Mode:      data.Mode,
		UpdatedAt: row.UpdatedAt,
	}
}
