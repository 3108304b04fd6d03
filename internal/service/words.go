package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/andyagdw/word-wizards/internal/cache"
	"github.com/andyagdw/word-wizards/internal/model"
	"github.com/andyagdw/word-wizards/internal/pkg/serr"
	"github.com/andyagdw/word-wizards/internal/provider"
)

// wordOfDayKey is shared by all callers so everyone sees the same word
// within a calendar day.
const wordOfDayKey = "word_of_day"

// searchPageSize is the number of words per page in search responses,
// regardless of the tier's total result limit.
const searchPageSize = 25

type wordProvider interface {
	RandomWord(ctx context.Context) (model.WordData, error)
	LookupWord(ctx context.Context, word string) (model.WordData, error)
	Search(ctx context.Context, filters model.SearchFilters, limit int) (model.SearchResult, error)
}

// WordsService fetches word data from the remote provider and shapes it for
// the caller's tier. Provider outages degrade responses instead of failing
// them; only a missing API key is surfaced as an error.
type WordsService struct {
	provider wordProvider
	cache    *cache.Daily
}

func NewWordsService(provider wordProvider, cache *cache.Daily) *WordsService {
	return &WordsService{
		provider: provider,
		cache:    cache,
	}
}

// WordResult is a projected word plus a flag telling whether the provider
// data behind it was unavailable.
type WordResult struct {
	Word     model.ProjectedWord
	Degraded bool
}

// SearchResult is a paged list of matching words. Total is the provider's
// overall match count, which may exceed the words returned.
type SearchResult struct {
	Total    int
	Pages    [][]string
	Degraded bool
}

// GetWordOfDay returns today's word, fetching a random word from the
// provider at most once per calendar day in the reference timezone.
func (s *WordsService) GetWordOfDay(ctx context.Context, tier model.Tier) (WordResult, error) {
	data, err := s.cache.GetOrRefresh(ctx, wordOfDayKey, s.provider.RandomWord)
	if err != nil {
		return s.recoverOutage(err, "fetch word of day")
	}

	return WordResult{Word: Project(data, tier)}, nil
}

// GetWord looks up a specific word with the provider.
func (s *WordsService) GetWord(ctx context.Context, word string, tier model.Tier) (WordResult, error) {
	data, err := s.provider.LookupWord(ctx, word)
	if err != nil {
		return s.recoverOutage(err, "look up word %q", word)
	}

	return WordResult{Word: Project(data, tier)}, nil
}

type SearchWordsRequest struct {
	Filters model.SearchFilters
	Tier    model.Tier
}

// SearchWords runs a filtered provider query capped by the tier's result
// limit and pages the matches into fixed-size chunks. Malformed filters are
// rejected with a ServiceError before any provider call.
func (s *WordsService) SearchWords(ctx context.Context, r SearchWordsRequest) (SearchResult, error) {
	if err := r.Filters.Validate(); err != nil {
		return SearchResult{}, serr.NewServiceError(err, http.StatusBadRequest, "%v", err)
	}

	res, err := s.provider.Search(ctx, r.Filters, r.Tier.SearchLimit())
	if err != nil {
		if errors.Is(err, provider.ErrMissingCredentials) {
			return SearchResult{}, serr.NewServiceError(err, http.StatusServiceUnavailable, "word provider is not configured")
		}
		if errors.Is(err, provider.ErrUnavailable) {
			slog.Warn("provider unavailable, returning degraded search result", "error", err)
			return SearchResult{Degraded: true}, nil
		}

		return SearchResult{}, fmt.Errorf("search words: %w", err)
	}

	return SearchResult{
		Total: res.Total,
		Pages: paginate(res.Words, searchPageSize),
	}, nil
}

// recoverOutage turns a provider outage into an empty degraded result. A
// missing API key cannot be recovered from and becomes a 503.
func (s *WordsService) recoverOutage(err error, msg string, args ...any) (WordResult, error) {
	if errors.Is(err, provider.ErrMissingCredentials) {
		return WordResult{}, serr.NewServiceError(err, http.StatusServiceUnavailable, "word provider is not configured")
	}
	if errors.Is(err, provider.ErrUnavailable) {
		slog.Warn("provider unavailable, returning degraded result", "error", err)
		return WordResult{Word: model.ProjectedWord{UsageLevel: model.UsageUnknown}, Degraded: true}, nil
	}

	return WordResult{}, fmt.Errorf("%s: %w", fmt.Sprintf(msg, args...), err)
}

func paginate(words []string, size int) [][]string {
	var pages [][]string
	for len(words) > size {
		pages = append(pages, words[:size])
		words = words[size:]
	}
	if len(words) > 0 {
		pages = append(pages, words)
	}

	return pages
}
