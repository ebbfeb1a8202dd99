package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"faq-bot/internal/models"
)

// MySQL error number for a missing table.
const mysqlNoSuchTable = 1146

const selectActiveFAQs = `
	SELECT question, answer
	FROM faqs
	WHERE is_active = 'y'
	ORDER BY sort_order ASC, id ASC
`

var _ Loader = (*MySQLStore)(nil)

// MySQLStore reads active rows of the faqs table.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

func (s *MySQLStore) Load(ctx context.Context) ([]models.FAQItem, error) {
	rows, err := s.db.QueryContext(ctx, selectActiveFAQs)
	if err != nil {
		if isMySQLMissingTable(err) {
			return nil, fmt.Errorf("%w: mysql table faqs", ErrSourceNotFound)
		}
		return nil, fmt.Errorf("query faqs: %w", err)
	}
	defer rows.Close()

	var c collector
	for rows.Next() {
		var question, answer sql.NullString
		if err := rows.Scan(&question, &answer); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		c.add(question.String, answer.String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate faqs: %w", err)
	}

	return c.result("mysql table faqs")
}

func isMySQLMissingTable(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlNoSuchTable
}
