package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"faq-bot/internal/models"
)

// SQLSTATE undefined_table.
const pgUndefinedTable = "42P01"

var (
	_ Loader    = (*PostgresStore)(nil)
	_ PgQuerier = (*pgxpool.Pool)(nil)
)

// PgQuerier is the query method shared by *pgxpool.Pool and *pgx.Conn.
type PgQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresStore reads active rows of the faqs table through pgx.
type PostgresStore struct {
	db PgQuerier
}

func NewPostgresStore(db PgQuerier) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(ctx context.Context) ([]models.FAQItem, error) {
	rows, err := s.db.Query(ctx, selectActiveFAQs)
	if err != nil {
		if isPgMissingTable(err) {
			return nil, fmt.Errorf("%w: postgres table faqs", ErrSourceNotFound)
		}
		return nil, fmt.Errorf("query faqs: %w", err)
	}
	defer rows.Close()

	var c collector
	for rows.Next() {
		var question, answer *string
		if err := rows.Scan(&question, &answer); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		c.add(deref(question), deref(answer))
	}
	if err := rows.Err(); err != nil {
		if isPgMissingTable(err) {
			return nil, fmt.Errorf("%w: postgres table faqs", ErrSourceNotFound)
		}
		return nil, fmt.Errorf("iterate faqs: %w", err)
	}

	return c.result("postgres table faqs")
}

func isPgMissingTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
