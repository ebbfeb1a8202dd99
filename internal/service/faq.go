package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"faq-bot/internal/matcher"
	"faq-bot/internal/models"
)

// MatchCache is satisfied by *cache.MatchCache.
type MatchCache interface {
	Get(ctx context.Context, query string) (int, bool, error)
	Set(ctx context.Context, query string, idx int) error
}

// Answer is the best FAQ entry for a question and its similarity ratio.
type Answer struct {
	Item  models.FAQItem
	Score float64
}

// FAQService answers questions from a collection that is fixed at
// construction. It is safe for concurrent use.
type FAQService struct {
	items []models.FAQItem
	cache MatchCache
	log   *zap.Logger

	bestIndex func(query string, items []models.FAQItem) (int, float64, error)
}

// NewFAQService copies items. cache may be nil.
func NewFAQService(items []models.FAQItem, cache MatchCache, log *zap.Logger) *FAQService {
	if log == nil {
		log = zap.NewNop()
	}
	owned := make([]models.FAQItem, len(items))
	copy(owned, items)
	return &FAQService{items: owned, cache: cache, log: log, bestIndex: matcher.BestIndex}
}

// Ask returns the best match for question. A blank question is
// ErrEmptyQuestion; anything that goes wrong while matching, including a
// panic, is ErrMatchingFailure.
func (s *FAQService) Ask(ctx context.Context, question string) (Answer, error) {
	if strings.TrimSpace(question) == "" {
		return Answer{}, ErrEmptyQuestion
	}
	query := matcher.Normalize(question)

	if s.cache != nil {
		idx, ok, err := s.cache.Get(ctx, query)
		if err != nil {
			s.log.Warn("match cache get failed", zap.Error(err))
		} else if ok && idx >= 0 && idx < len(s.items) {
			item := s.items[idx]
			return Answer{Item: item, Score: matcher.Ratio(query, matcher.Lower(item.Question))}, nil
		}
	}

	idx, score, err := s.match(query)
	if err != nil {
		s.log.Error("matching failed", zap.String("question", question), zap.Error(err))
		return Answer{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, query, idx); err != nil {
			s.log.Warn("match cache set failed", zap.Error(err))
		}
	}

	s.log.Debug("matched",
		zap.String("question", question),
		zap.Int("index", idx),
		zap.Float64("score", score),
	)
	return Answer{Item: s.items[idx], Score: score}, nil
}

func (s *FAQService) match(query string) (idx int, score float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrMatchingFailure, r)
		}
	}()

	idx, score, err = s.bestIndex(query, s.items)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrMatchingFailure, err)
	}
	return idx, score, nil
}

// Items returns a copy of the collection in source order.
func (s *FAQService) Items() []models.FAQItem {
	out := make([]models.FAQItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *FAQService) Count() int {
	return len(s.items)
}
