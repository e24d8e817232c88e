package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"sflix-catalog-service/internal/metrics"
	"sflix-catalog-service/internal/models"
)

// List returns all titles in catalog order.
func (s *Store) List() []models.Title {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTitles(s.titles)
}

// Get returns the title with the given id.
func (s *Store) Get(id string) (models.Title, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.titleIndexLocked(id)
	if i < 0 {
		return models.Title{}, ErrTitleNotFound
	}
	return s.titles[i].Clone(), nil
}

// Len returns the number of titles in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.titles)
}

// Create adds a title built from form to the front of the catalog.
func (s *Store) Create(form models.TitleForm) (models.Title, error) {
	if err := s.validateForm(form); err != nil {
		return models.Title{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.nextIDLocked()
	if err != nil {
		return models.Title{}, err
	}
	t := s.buildTitle(id, form)
	s.titles = append([]models.Title{t}, s.titles...)
	s.indexLocked(t)
	metrics.CatalogTitles.Set(float64(len(s.titles)))

	s.logger.Info("title created", "id", t.ID, "title", t.Title)
	return t.Clone(), nil
}

// Update replaces the title with the given id by one built from form.
func (s *Store) Update(id string, form models.TitleForm) (models.Title, error) {
	if err := s.validateForm(form); err != nil {
		return models.Title{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.titleIndexLocked(id)
	if i < 0 {
		return models.Title{}, ErrTitleNotFound
	}
	t := s.buildTitle(id, form)
	s.titles[i] = t
	s.indexLocked(t)

	s.logger.Info("title updated", "id", t.ID)
	return t.Clone(), nil
}

// Delete removes the title with the given id and closes its detail view if
// open. Profile lists are left untouched.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.titleIndexLocked(id)
	if i < 0 {
		return ErrTitleNotFound
	}
	s.titles = append(s.titles[:i:i], s.titles[i+1:]...)
	metrics.CatalogTitles.Set(float64(len(s.titles)))
	if s.session.Selected != nil && s.session.Selected.ID == id {
		s.session.Selected = nil
	}
	if err := s.index.Remove(id); err != nil {
		s.logger.Error("failed to remove title from index", "id", id, "error", err)
	}

	s.logger.Info("title deleted", "id", id)
	return nil
}

// Search runs a full-text query over the catalog and returns matches in
// relevance order.
func (s *Store) Search(query string, limit int) ([]models.Title, error) {
	ids, err := s.index.Search(query, limit)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]models.Title, 0, len(ids))
	for _, id := range ids {
		if i := s.titleIndexLocked(id); i >= 0 {
			results = append(results, s.titles[i].Clone())
		}
	}
	return results, nil
}

func (s *Store) validateForm(form models.TitleForm) error {
	form.Title = strings.TrimSpace(form.Title)
	return s.validator.Validate(form)
}

func (s *Store) indexLocked(t models.Title) {
	if err := s.index.Upsert(t); err != nil {
		s.logger.Error("failed to index title", "id", t.ID, "error", err)
	}
}

// nextIDLocked derives an id from the current time in milliseconds. When that
// id is already taken a random suffix is appended until it is unique.
func (s *Store) nextIDLocked() (string, error) {
	base := strconv.FormatInt(s.now().UnixMilli(), 10)
	id := base
	for s.titleIndexLocked(id) >= 0 {
		suffix, err := s.suffix()
		if err != nil {
			return "", fmt.Errorf("generate id suffix: %w", err)
		}
		id = base + "-" + suffix
	}
	return id, nil
}

// buildTitle applies the form defaults. matchScore is coerced but not clamped.
func (s *Store) buildTitle(id string, form models.TitleForm) models.Title {
	t := models.Title{
		ID:             id,
		Title:          strings.TrimSpace(form.Title),
		Description:    form.Description,
		MatchScore:     form.MatchScore.Int(0),
		Year:           form.Year.Int(s.now().Year()),
		AgeRating:      defaultString(form.AgeRating, "NR"),
		Duration:       defaultString(form.Duration, "0m"),
		Genre:          ParseGenres(form.Genres),
		BackdropParams: defaultString(form.BackdropParams, "default"),
		PosterParams:   defaultString(form.PosterParams, "default"),
		IsOriginal:     form.IsOriginal,
	}
	if t.MatchScore < 0 || t.MatchScore > 100 {
		s.logger.Warn("match score outside 0-100 kept as entered", "id", id, "match_score", t.MatchScore)
	}
	return t
}

// ParseGenres splits a comma separated genre list, dropping blanks.
func ParseGenres(input string) []string {
	genres := []string{}
	for _, g := range strings.Split(input, ",") {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
