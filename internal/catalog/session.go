package catalog

import (
	"fmt"

	"sflix-catalog-service/internal/models"
)

// Session returns a snapshot of the view state.
func (s *Store) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionLocked()
}

func (s *Store) sessionLocked() models.Session {
	out := s.session
	if out.Selected != nil {
		out.Selected = titlePtr(*out.Selected)
	}
	if out.NowPlaying != nil {
		out.NowPlaying = titlePtr(*out.NowPlaying)
	}
	out.SearchResults = cloneTitles(s.session.SearchResults)
	return out
}

// SelectProfile makes the profile active.
func (s *Store) SelectProfile(id string) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profileIndexLocked(id) < 0 {
		return models.Session{}, ErrProfileNotFound
	}
	s.session.ActiveProfileID = id
	return s.sessionLocked(), nil
}

// SwitchProfile clears the active profile, returning to profile selection.
func (s *Store) SwitchProfile() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.ActiveProfileID = ""
	return s.sessionLocked()
}

// SetView switches the current view. Going home clears the search.
func (s *Store) SetView(v models.View) (models.Session, error) {
	if !v.Valid() {
		return models.Session{}, fmt.Errorf("%w: %q", ErrInvalidView, v)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.View = v
	if v == models.ViewHome {
		s.searchGen++
		s.session.SearchQuery = ""
		s.session.SearchResults = []models.Title{}
		s.session.Searching = false
	}
	return s.sessionLocked(), nil
}

// Select opens the detail view for a title.
func (s *Store) Select(titleID string) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.lookupLocked(titleID)
	if !ok {
		return models.Session{}, ErrTitleNotFound
	}
	s.session.Selected = titlePtr(t)
	return s.sessionLocked(), nil
}

// CloseSelection closes the detail view.
func (s *Store) CloseSelection() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Selected = nil
	return s.sessionLocked()
}

// Play starts the player. With an empty titleID it plays the selection, or
// the hero when nothing is selected.
func (s *Store) Play(titleID string) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t models.Title
	switch {
	case titleID != "":
		found, ok := s.lookupLocked(titleID)
		if !ok {
			return models.Session{}, ErrTitleNotFound
		}
		t = found
	case s.session.Selected != nil:
		t = *s.session.Selected
	case len(s.titles) > 0:
		t = s.titles[0]
	default:
		t = models.FallbackHero
	}

	s.session.NowPlaying = titlePtr(t)
	s.session.Selected = nil
	s.session.View = models.ViewPlayer
	return s.sessionLocked(), nil
}

// BeginSearch records a new search and returns its generation. Previous
// results are cleared.
func (s *Store) BeginSearch(query string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchGen++
	s.session.View = models.ViewSearch
	s.session.SearchQuery = query
	s.session.SearchResults = []models.Title{}
	s.session.Searching = true
	return s.searchGen
}

// FinishSearch stores results if gen is still the latest search. It reports
// whether they were applied.
func (s *Store) FinishSearch(gen uint64, results []models.Title) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.searchGen {
		s.logger.Debug("dropping stale search results", "generation", gen, "current", s.searchGen)
		return false
	}
	s.session.SearchResults = cloneTitles(results)
	s.session.Searching = false
	return true
}
