// Package matcher picks the FAQ entry whose question is most similar to a
// user query.
//
// Similarity is the Ratcliff/Obershelp ratio computed by difflib's
// SequenceMatcher over the runes of both strings: 2*M / (len(a)+len(b)),
// where M is the number of runes in the matching blocks.
package matcher

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"faq-bot/internal/models"
)

// Normalize trims surrounding whitespace and lower-cases s.
func Normalize(s string) string {
	return Lower(strings.TrimSpace(s))
}

// Lower applies full Unicode lower-case mapping, which may change the
// rune count: İ becomes i plus U+0307 and a word-final Σ becomes ς.
func Lower(s string) string {
	// a Caser keeps state, so one per call
	return cases.Lower(language.Und).String(s)
}

// Ratio returns the similarity of a and b in [0, 1]. Two empty strings
// have ratio 1.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

// FindBestMatch returns the item whose question is most similar to query.
// Ties keep the earliest item.
func FindBestMatch(query string, items []models.FAQItem) (models.FAQItem, error) {
	item, _, err := Score(query, items)
	return item, err
}

// Score is FindBestMatch that also reports the winning ratio.
func Score(query string, items []models.FAQItem) (models.FAQItem, float64, error) {
	idx, score, err := BestIndex(query, items)
	if err != nil {
		return models.FAQItem{}, 0, err
	}
	return items[idx], score, nil
}

// BestIndex returns the position of the best item together with its ratio.
func BestIndex(query string, items []models.FAQItem) (int, float64, error) {
	if len(items) == 0 {
		return -1, 0, ErrNoItems
	}

	q := Normalize(query)
	best, bestScore := -1, -1.0
	for i, item := range items {
		// strict > keeps the first of equally scored items
		if score := Ratio(q, Lower(item.Question)); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, bestScore, nil
}

// runes splits s into one element per code point, the unit difflib
// compares.
func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
