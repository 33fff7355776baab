// Package blog turns the raw content collection into the views the site needs:
// entries per language, related posts, tag listings and pages.
package blog

import (
	"context"
	"folio/internal/domain/content"
	"folio/internal/index"
	"folio/internal/logger"
	"folio/internal/readtime"
)

// Source supplies the raw collection. Entries must not be modified by callers.
type Source interface {
	Load(ctx context.Context) ([]content.Entry, error)
}

// MetricsCache stores reading statistics by content key.
type MetricsCache interface {
	Get(key []byte) (readtime.Stats, error)
	Put(key []byte, st readtime.Stats) error
}

type Repository struct {
	src   Source
	est   readtime.Estimator
	cache MetricsCache
	log   logger.Logger
}

type Option func(*Repository)

func WithEstimator(e readtime.Estimator) Option {
	return func(r *Repository) { r.est = e }
}

func WithMetricsCache(c MetricsCache) Option {
	return func(r *Repository) { r.cache = c }
}

func WithLogger(l logger.Logger) Option {
	return func(r *Repository) { r.log = l }
}

func NewRepository(src Source, opts ...Option) *Repository {
	r := &Repository{
		src: src,
		est: readtime.Estimator{WordsPerMinute: readtime.DefaultWordsPerMinute},
		log: logger.NewNop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// LoadAll returns a fresh, enriched copy of the collection on every call.
// Schema errors from the source are returned unchanged.
func (r *Repository) LoadAll(ctx context.Context) ([]content.Entry, error) {
	raw, err := r.src.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]content.Entry, len(raw))
	for i, e := range raw {
		out[i] = r.enrich(e)
	}
	r.log.Debug("content loaded", logger.Int("entries", len(out)))
	return out, nil
}

func (r *Repository) enrich(e content.Entry) content.Entry {
	e.Slug = content.SlugFromID(e.ID)
	e.Data.Tags = append([]string{}, e.Data.Tags...)
	st := r.stats(e.Body)
	e.WordCount = st.Words
	e.ReadingTime = st.Minutes
	return e
}

func (r *Repository) stats(body string) readtime.Stats {
	if r.cache == nil {
		return r.est.Estimate(body)
	}
	key := index.Key(body, r.pace())
	if st, err := r.cache.Get(key); err == nil {
		return st
	}
	st := r.est.Estimate(body)
	if err := r.cache.Put(key, st); err != nil {
		r.log.Warn("metrics cache write failed", logger.Err(err))
	}
	return st
}

func (r *Repository) pace() int {
	if r.est.WordsPerMinute <= 0 {
		return readtime.DefaultWordsPerMinute
	}
	return r.est.WordsPerMinute
}

// ByLanguage returns the entries written in lang, newest first.
func (r *Repository) ByLanguage(ctx context.Context, lang string) ([]content.Entry, error) {
	all, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return SortByPubDate(FilterByLanguage(all, lang)), nil
}

// RelatedTo scores the corpus against source. limit <= 0 means DefaultRelatedLimit.
func (r *Repository) RelatedTo(ctx context.Context, source content.Entry, lang string, limit int) ([]content.RelatedCandidate, error) {
	all, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return Related(all, source, lang, limit), nil
}

func (r *Repository) ByTag(ctx context.Context, lang, tag string) ([]content.Entry, error) {
	entries, err := r.ByLanguage(ctx, lang)
	if err != nil {
		return nil, err
	}
	return FilterByTag(entries, tag), nil
}
