package service

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sflix-catalog-service/internal/catalog"
	"sflix-catalog-service/internal/models"
)

type fakeFetcher struct {
	available bool
	calls     atomic.Int32
	fetch     func(ctx context.Context, category string) models.Recommendations
}

func (f *fakeFetcher) Available() bool { return f.available }

func (f *fakeFetcher) FetchByCategory(ctx context.Context, category string) models.Recommendations {
	f.calls.Add(1)
	return f.fetch(ctx, category)
}

func titlesFor(category string) models.Recommendations {
	return models.Found([]models.Title{{ID: category + "-1", Title: category}})
}

func newFeedStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func rowLabels(feed models.Feed) []string {
	labels := make([]string, 0, len(feed.Rows))
	for _, r := range feed.Rows {
		labels = append(labels, r.Title)
	}
	return labels
}

func TestFeedService_Feed(t *testing.T) {
	store := newFeedStore(t)
	svc := NewFeedService(store, &fakeFetcher{})

	feed := svc.Feed()
	assert.Equal(t, "hero-1", feed.Hero.ID)
	assert.Equal(t, models.ImageURL("cyberpunk", 1280, 720), feed.Hero.BackdropURL)
	assert.Equal(t, []string{models.TrendingLabel, models.OriginalsLabel}, rowLabels(feed))
	assert.False(t, feed.Loading)
}

func TestFeedService_LoadDynamicRows_NoCredential(t *testing.T) {
	store := newFeedStore(t)
	fetcher := &fakeFetcher{available: false}
	svc := NewFeedService(store, fetcher)

	svc.LoadDynamicRows(context.Background())

	assert.Zero(t, fetcher.calls.Load())
	assert.Len(t, svc.Feed().Rows, 2)
	assert.False(t, svc.Feed().Loading)
}

func TestFeedService_LoadDynamicRows(t *testing.T) {
	store := newFeedStore(t)
	fetcher := &fakeFetcher{available: true, fetch: func(_ context.Context, category string) models.Recommendations {
		return titlesFor(category)
	}}
	svc := NewFeedService(store, fetcher)

	svc.LoadDynamicRows(context.Background())

	feed := svc.Feed()
	assert.EqualValues(t, 2, fetcher.calls.Load())
	require.Len(t, feed.Rows, 4)
	assert.ElementsMatch(t,
		[]string{"Critically Acclaimed Dark Comedies", "High-Octane Future Action"},
		rowLabels(feed)[2:],
	)
	assert.False(t, feed.Loading)
}

func TestFeedService_LoadDynamicRows_SkipsEmptyResults(t *testing.T) {
	store := newFeedStore(t)
	fetcher := &fakeFetcher{available: true, fetch: func(_ context.Context, category string) models.Recommendations {
		if category == "Dark Comedy" {
			return models.Unavailable(models.ReasonTransport)
		}
		return titlesFor(category)
	}}
	svc := NewFeedService(store, fetcher)

	svc.LoadDynamicRows(context.Background())

	feed := svc.Feed()
	assert.Equal(t, []string{models.TrendingLabel, models.OriginalsLabel, "High-Octane Future Action"}, rowLabels(feed))
	assert.False(t, feed.Loading)
}

func TestFeedService_LoadDynamicRows_StaleLoadIsDropped(t *testing.T) {
	store := newFeedStore(t)
	release := make(chan struct{})
	started := make(chan struct{}, 2)

	fetcher := &fakeFetcher{available: true}
	fetcher.fetch = func(_ context.Context, category string) models.Recommendations {
		if fetcher.calls.Load() <= 2 {
			started <- struct{}{}
			<-release
			return models.Found([]models.Title{{ID: "stale", Title: "Stale"}})
		}
		return titlesFor(category)
	}
	svc := NewFeedService(store, fetcher)

	done := make(chan struct{})
	go func() {
		svc.LoadDynamicRows(context.Background())
		close(done)
	}()
	<-started
	<-started
	assert.True(t, svc.Feed().Loading)

	svc.LoadDynamicRows(context.Background())
	close(release)
	<-done

	feed := svc.Feed()
	require.Len(t, feed.Rows, 4)
	for _, row := range feed.Rows[2:] {
		assert.NotEqual(t, "stale", row.Titles[0].ID)
	}
	assert.False(t, feed.Loading)
}
