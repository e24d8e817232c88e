package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"sflix-catalog-service/internal/catalog"
	"sflix-catalog-service/internal/metrics"
	"sflix-catalog-service/internal/models"
)

// dynamicRow pairs the category sent to the generator with the row label
// shown on the feed.
type dynamicRow struct {
	category string
	label    string
}

var dynamicRows = []dynamicRow{
	{category: "Dark Comedy", label: "Critically Acclaimed Dark Comedies"},
	{category: "Cyberpunk Action", label: "High-Octane Future Action"},
}

// CategoryFetcher fetches recommendations for a category label.
type CategoryFetcher interface {
	Available() bool
	FetchByCategory(ctx context.Context, category string) models.Recommendations
}

// FeedService assembles the home feed and loads its generated rows.
type FeedService struct {
	store   *catalog.Store
	fetcher CategoryFetcher
}

// NewFeedService creates a new FeedService.
func NewFeedService(store *catalog.Store, fetcher CategoryFetcher) *FeedService {
	return &FeedService{store: store, fetcher: fetcher}
}

// Feed returns the hero, all rows and whether generated rows are still loading.
func (s *FeedService) Feed() models.Feed {
	return models.Feed{
		Hero:    models.NewTitleView(s.store.Hero()),
		Rows:    models.NewRowViews(s.store.Rows()),
		Loading: s.store.Loading(),
	}
}

// LoadDynamicRows fetches the generated category rows concurrently and
// appends each non-empty one as it completes. A later call supersedes rows
// still in flight from an earlier one.
func (s *FeedService) LoadDynamicRows(ctx context.Context) {
	if !s.fetcher.Available() {
		slog.Debug("skipping dynamic rows, recommendations unavailable")
		return
	}

	gen := s.store.BeginRowLoad(len(dynamicRows))
	g, ctx := errgroup.WithContext(ctx)
	for _, row := range dynamicRows {
		g.Go(func() error {
			defer s.store.FinishRowLoad(gen)

			result := s.fetcher.FetchByCategory(ctx, row.category)
			titles := result.List()
			if len(titles) == 0 {
				slog.Warn("dynamic row produced no titles", "category", row.category, "status", result.Status, "reason", result.Reason)
				return nil
			}
			if s.store.AppendRow(gen, models.CategoryRow{Title: row.label, Titles: titles}) {
				metrics.FeedRowsAppended.Inc()
			} else {
				metrics.FeedRowsDropped.Inc()
			}
			return nil
		})
	}
	_ = g.Wait()
	slog.Info("dynamic rows loaded", "generation", gen)
}
