// Package store loads the FAQ collection once at startup.
//
// Every source trims both fields of each record, drops records where
// either field ends up empty, and keeps source order. A source that
// yields no valid record fails with ErrEmptyData.
package store

import (
	"context"
	"fmt"
	"strings"

	"faq-bot/internal/config"
	"faq-bot/internal/models"
)

// Loader reads the whole FAQ collection.
type Loader interface {
	Load(ctx context.Context) ([]models.FAQItem, error)
}

// collector accumulates records in order, skipping incomplete ones.
type collector struct {
	items []models.FAQItem
}

func (c *collector) add(question, answer string) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return
	}
	c.items = append(c.items, models.FAQItem{Question: question, Answer: answer})
}

func (c *collector) result(source string) ([]models.FAQItem, error) {
	if len(c.items) == 0 {
		return nil, fmt.Errorf("%w: %s has no row with both question and answer", ErrEmptyData, source)
	}
	return c.items, nil
}

// Load opens the source selected by cfg, reads it and releases any
// database handle before returning.
func Load(ctx context.Context, cfg *config.Config) ([]models.FAQItem, error) {
	switch cfg.Source {
	case config.SourceMySQL:
		db, err := config.OpenMySQL(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return NewMySQLStore(db).Load(ctx)

	case config.SourcePostgres:
		pool, err := config.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return NewPostgresStore(pool).Load(ctx)

	case config.SourceCSV, "":
		return NewCSVStore(cfg.CSVPath).Load(ctx)
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownSource, cfg.Source)
}
