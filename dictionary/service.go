package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"

	"github.com/frisklabs/frisk/api"
	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/httpf"
	"github.com/frisklabs/frisk/models"
)

const dictionaryPathPattern = "/api/v1/dictionary/%s"

// S serves typeahead lookups. Unlike pagination fetches, lookups are
// cancellable: issuing a lookup for a category cancels the in-flight
// lookup for that category, so a fast typist only pays for the last
// keystroke.
type S interface {
	Lookup(ctx context.Context, category string, query string) ([]models.DictionarySuggestion, error)
}

type inflightLookup struct {
	cancel context.CancelFunc
}

type service struct {
	client *resty.Client
	limit  int
	logger *slog.Logger

	mu       sync.Mutex
	inflight map[string]*inflightLookup
}

func NewService(f httpf.F, resultLimit int, logBuilder aplog.Builder) (S, error) {
	client, err := f.NewClient()
	if err != nil {
		return nil, err
	}

	return &service{
		client:   client,
		limit:    resultLimit,
		logger:   logBuilder.WithService("dictionary").Build(),
		inflight: make(map[string]*inflightLookup),
	}, nil
}

func (s *service) Lookup(ctx context.Context, category string, query string) ([]models.DictionarySuggestion, error) {
	ctx, entry := s.supersede(ctx, category)
	defer s.finish(category, entry)

	raw, err := api.GetJSON[[]api.RawDictionarySuggestion](ctx, s.client, "looking up "+category, fmt.Sprintf(dictionaryPathPattern, category), map[string]string{
		"q":     query,
		"limit": strconv.Itoa(s.limit),
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			// Superseded by a newer keystroke; not a failure worth surfacing loudly.
			s.logger.Debug("lookup superseded", "category", category)
			return nil, err
		}
		s.logger.Error("failed to look up dictionary", "category", category, "error", err)
		return nil, err
	}

	out := make([]models.DictionarySuggestion, 0, len(raw))
	for _, r := range raw {
		out = append(out, models.DictionarySuggestion{
			Category: r.Category,
			Value:    r.Value,
		})
	}

	return out, nil
}

// supersede cancels the previous in-flight lookup for the category and
// registers this one.
func (s *service) supersede(ctx context.Context, category string) (context.Context, *inflightLookup) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.inflight[category]; ok {
		prev.cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	entry := &inflightLookup{cancel: cancel}
	s.inflight[category] = entry

	return ctx, entry
}

func (s *service) finish(category string, entry *inflightLookup) {
	entry.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Only clear the slot if it is still ours; a newer lookup may have
	// replaced it already.
	if s.inflight[category] == entry {
		delete(s.inflight, category)
	}
}

var _ S = &service{}
