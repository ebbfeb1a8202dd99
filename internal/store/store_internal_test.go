package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faq-bot/internal/models"
)

func TestCollector(t *testing.T) {
	t.Parallel()

	var c collector
	c.add(" Q1 ", " A1 ")
	c.add("Q2", "")
	c.add("", "A3")
	c.add("Q4", "A4")

	items, err := c.result("test")

	require.NoError(t, err)
	assert.Equal(t, []models.FAQItem{{Question: "Q1", Answer: "A1"}, {Question: "Q4", Answer: "A4"}}, items)
}

func TestCollector_Empty(t *testing.T) {
	t.Parallel()

	var c collector
	c.add(" ", "A")

	_, err := c.result("test")

	require.ErrorIs(t, err, ErrEmptyData)
}

func TestMissingTable(t *testing.T) {
	t.Parallel()

	assert.True(t, isMySQLMissingTable(fmt.Errorf("query: %w", &mysql.MySQLError{Number: 1146})))
	assert.False(t, isMySQLMissingTable(&mysql.MySQLError{Number: 1045}))
	assert.False(t, isMySQLMissingTable(errors.New("boom")))

	assert.True(t, isPgMissingTable(fmt.Errorf("query: %w", &pgconn.PgError{Code: "42P01"})))
	assert.False(t, isPgMissingTable(&pgconn.PgError{Code: "28P01"}))
	assert.False(t, isPgMissingTable(errors.New("boom")))
}
