// Package catalog holds the in-memory catalog, profiles and shared view
// session. All state lives in a single Store guarded by one mutex; every
// mutation goes through its methods.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"sflix-catalog-service/internal/metrics"
	"sflix-catalog-service/internal/models"
	"sflix-catalog-service/internal/validation"
)

var (
	ErrTitleNotFound   = errors.New("title not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidView     = errors.New("invalid view")
)

// TrendingSize is the number of leading titles shown in the trending row.
const TrendingSize = 4

// Store is the authoritative catalog and view state.
type Store struct {
	mu sync.RWMutex

	titles []models.Title
	index  *Index

	aiRows      []models.CategoryRow
	rowGen      uint64
	rowsPending int

	profiles []models.UserProfile

	session   models.Session
	searchGen uint64

	validator *validation.Validator
	now       func() time.Time
	suffix    func() (string, error)
	pickColor func(n int) int
	logger    *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for generated ids and default years.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDSuffix overrides the generator used to disambiguate colliding ids.
func WithIDSuffix(fn func() (string, error)) Option {
	return func(s *Store) { s.suffix = fn }
}

// WithLogger sets the store's logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithTitles replaces the bootstrap titles.
func WithTitles(titles []models.Title) Option {
	return func(s *Store) { s.titles = cloneTitles(titles) }
}

// WithProfiles replaces the bootstrap profiles.
func WithProfiles(profiles []models.UserProfile) Option {
	return func(s *Store) {
		s.profiles = make([]models.UserProfile, 0, len(profiles))
		for _, p := range profiles {
			s.profiles = append(s.profiles, p.Clone())
		}
	}
}

// NewStore creates a store seeded with the bootstrap catalog and profiles.
func NewStore(opts ...Option) (*Store, error) {
	s := &Store{
		titles:    cloneTitles(InitialTitles),
		validator: validation.New(),
		now:       time.Now,
		suffix:    func() (string, error) { return gonanoid.New(8) },
		pickColor: rand.IntN,
		logger:    slog.Default(),
		session:   models.Session{View: models.ViewHome, SearchResults: []models.Title{}},
	}
	for _, p := range InitialProfiles {
		s.profiles = append(s.profiles, p.Clone())
	}
	for _, opt := range opts {
		opt(s)
	}

	index, err := NewIndex()
	if err != nil {
		return nil, fmt.Errorf("create catalog index: %w", err)
	}
	if err := index.IndexAll(s.titles); err != nil {
		_ = index.Close()
		return nil, fmt.Errorf("index catalog: %w", err)
	}
	s.index = index
	metrics.CatalogTitles.Set(float64(len(s.titles)))

	return s, nil
}

// Close releases the search index.
func (s *Store) Close() error {
	return s.index.Close()
}

// lookupLocked resolves a title id against everything the front end can
// show: the catalog, the rows, the search results and the player.
func (s *Store) lookupLocked(id string) (models.Title, bool) {
	if i := s.titleIndexLocked(id); i >= 0 {
		return s.titles[i], true
	}
	for _, row := range s.aiRows {
		for _, t := range row.Titles {
			if t.ID == id {
				return t, true
			}
		}
	}
	for _, t := range s.session.SearchResults {
		if t.ID == id {
			return t, true
		}
	}
	if s.session.NowPlaying != nil && s.session.NowPlaying.ID == id {
		return *s.session.NowPlaying, true
	}
	return models.Title{}, false
}

func (s *Store) titleIndexLocked(id string) int {
	for i, t := range s.titles {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneTitles(titles []models.Title) []models.Title {
	out := make([]models.Title, 0, len(titles))
	for _, t := range titles {
		out = append(out, t.Clone())
	}
	return out
}

func titlePtr(t models.Title) *models.Title {
	c := t.Clone()
	return &c
}
