package catalog

import "sflix-catalog-service/internal/models"

// Rows returns the trending row, the originals row and any loaded AI rows in
// the order they arrived.
func (s *Store) Rows() []models.CategoryRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := min(TrendingSize, len(s.titles))
	originals := []models.Title{}
	for _, t := range s.titles {
		if t.IsOriginal {
			originals = append(originals, t.Clone())
		}
	}

	rows := []models.CategoryRow{
		{Title: models.TrendingLabel, Titles: cloneTitles(s.titles[:n])},
		{Title: models.OriginalsLabel, Titles: originals},
	}
	for _, r := range s.aiRows {
		rows = append(rows, models.CategoryRow{Title: r.Title, Titles: cloneTitles(r.Titles)})
	}
	return rows
}

// Hero returns the first catalog title, or the fallback hero when empty.
func (s *Store) Hero() models.Title {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.titles) == 0 {
		return models.FallbackHero.Clone()
	}
	return s.titles[0].Clone()
}

// BeginRowLoad starts a new row generation expecting pending loads. Rows
// appended by earlier generations are dropped.
func (s *Store) BeginRowLoad(pending int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rowGen++
	s.aiRows = nil
	s.rowsPending = pending
	return s.rowGen
}

// AppendRow adds row if gen is still current and the row has titles.
// It reports whether the row was applied.
func (s *Store) AppendRow(gen uint64, row models.CategoryRow) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.rowGen {
		s.logger.Debug("dropping row from stale load", "row", row.Title, "generation", gen, "current", s.rowGen)
		return false
	}
	if len(row.Titles) == 0 {
		return false
	}
	s.aiRows = append(s.aiRows, models.CategoryRow{Title: row.Title, Titles: cloneTitles(row.Titles)})
	return true
}

// FinishRowLoad marks one load of gen as done.
func (s *Store) FinishRowLoad(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.rowGen && s.rowsPending > 0 {
		s.rowsPending--
	}
}

// Loading reports whether row loads of the current generation are pending.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rowsPending > 0
}
