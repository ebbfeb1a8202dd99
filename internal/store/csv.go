package store

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"faq-bot/internal/models"
)

var _ Loader = (*CSVStore)(nil)

// CSVStore reads a UTF-8 csv file whose header names a question and an
// answer column. Other columns are ignored.
type CSVStore struct {
	path string
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

func (s *CSVStore) Load(ctx context.Context) ([]models.FAQItem, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	return readCSV(ctx, f, s.path)
}

func readCSV(ctx context.Context, r io.Reader, name string) ([]models.FAQItem, error) {
	br := bufio.NewReader(r)
	// Spreadsheet exports often start with a byte order mark.
	if bom, err := br.Peek(3); err == nil && string(bom) == "\ufeff" {
		_, _ = br.Discard(3)
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	var c collector

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return c.result(name)
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", name, err)
	}

	qi, ai := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "question":
			if qi < 0 {
				qi = i
			}
		case "answer":
			if ai < 0 {
				ai = i
			}
		}
	}
	if qi < 0 || ai < 0 {
		return nil, fmt.Errorf("%w: %s header needs question and answer columns", ErrEmptyData, name)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		c.add(field(record, qi), field(record, ai))
	}

	return c.result(name)
}

// field tolerates short rows.
func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
