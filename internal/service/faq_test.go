package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faq-bot/internal/models"
	"faq-bot/internal/service"
)

var items = []models.FAQItem{
	{Question: "What is your name?", Answer: "Bot"},
	{Question: "What is the weather?", Answer: "Sunny"},
}

type fakeCache struct {
	mu     sync.Mutex
	data   map[string]int
	getErr error
	setErr error
	sets   int
}

func (f *fakeCache) Get(_ context.Context, query string) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return 0, false, f.getErr
	}
	idx, ok := f.data[query]
	return idx, ok, nil
}

func (f *fakeCache) Set(_ context.Context, query string, idx int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	if f.data == nil {
		f.data = map[string]int{}
	}
	f.data[query] = idx
	return nil
}

func TestFAQService_Ask(t *testing.T) {
	t.Parallel()

	t.Run("returns best match with score", func(t *testing.T) {
		t.Parallel()

		svc := service.NewFAQService(items, nil, nil)

		got, err := svc.Ask(context.Background(), "what's your name")

		require.NoError(t, err)
		assert.Equal(t, "Bot", got.Item.Answer)
		assert.InDelta(t, 0.8823529411, got.Score, 1e-9)
	})

	t.Run("blank question is rejected", func(t *testing.T) {
		t.Parallel()

		svc := service.NewFAQService(items, nil, nil)

		_, err := svc.Ask(context.Background(), "   \t ")

		require.ErrorIs(t, err, service.ErrEmptyQuestion)
	})

	t.Run("empty collection is a matching failure", func(t *testing.T) {
		t.Parallel()

		svc := service.NewFAQService(nil, nil, nil)

		_, err := svc.Ask(context.Background(), "hello")

		require.ErrorIs(t, err, service.ErrMatchingFailure)
	})

	t.Run("stores the match under the normalized query", func(t *testing.T) {
		t.Parallel()

		c := &fakeCache{}
		svc := service.NewFAQService(items, c, nil)

		_, err := svc.Ask(context.Background(), "  Weather Today ")

		require.NoError(t, err)
		assert.Equal(t, map[string]int{"weather today": 1}, c.data)
	})

	t.Run("uses a cached position", func(t *testing.T) {
		t.Parallel()

		// deliberately point at the worse entry to prove the cache is read
		c := &fakeCache{data: map[string]int{"weather today": 0}}
		svc := service.NewFAQService(items, c, nil)

		got, err := svc.Ask(context.Background(), "weather today")

		require.NoError(t, err)
		assert.Equal(t, "Bot", got.Item.Answer)
		assert.Zero(t, c.sets)
	})

	t.Run("cache errors fall back to matching", func(t *testing.T) {
		t.Parallel()

		c := &fakeCache{getErr: errors.New("down"), setErr: errors.New("down")}
		svc := service.NewFAQService(items, c, nil)

		got, err := svc.Ask(context.Background(), "weather today")

		require.NoError(t, err)
		assert.Equal(t, "Sunny", got.Item.Answer)
	})

	t.Run("concurrent asks agree", func(t *testing.T) {
		t.Parallel()

		svc := service.NewFAQService(items, &fakeCache{}, nil)

		var wg sync.WaitGroup
		answers := make([]string, 16)
		for i := range answers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				got, err := svc.Ask(context.Background(), "weather today")
				if err == nil {
					answers[i] = got.Item.Answer
				}
			}(i)
		}
		wg.Wait()

		for _, a := range answers {
			assert.Equal(t, "Sunny", a)
		}
	})
}

func TestFAQService_Items(t *testing.T) {
	t.Parallel()

	src := []models.FAQItem{{Question: "Q", Answer: "A"}}
	svc := service.NewFAQService(src, nil, nil)
	src[0].Answer = "changed"

	got := svc.Items()
	got[0].Question = "mutated"

	assert.Equal(t, []models.FAQItem{{Question: "Q", Answer: "A"}}, svc.Items())
	assert.Equal(t, 1, svc.Count())
}
