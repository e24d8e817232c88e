package catalog

import (
	"fmt"
	"strconv"

	"sflix-catalog-service/internal/models"
)

// Profiles returns all profiles.
func (s *Store) Profiles() []models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.UserProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p.Clone())
	}
	return out
}

// Profile returns the profile with the given id.
func (s *Store) Profile(id string) (models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.profileIndexLocked(id)
	if i < 0 {
		return models.UserProfile{}, ErrProfileNotFound
	}
	return s.profiles[i].Clone(), nil
}

// AddProfile appends a generic profile with a random avatar colour.
func (s *Store) AddProfile() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(len(s.profiles) + 1)
	p := models.UserProfile{
		ID:          id,
		Name:        fmt.Sprintf("User %s", id),
		AvatarColor: models.ProfileColors[s.pickColor(len(models.ProfileColors))],
		MyList:      []models.Title{},
	}
	s.profiles = append(s.profiles, p)

	s.logger.Info("profile added", "id", id)
	return p.Clone()
}

// MyList returns the profile's list in insertion order.
func (s *Store) MyList(profileID string) ([]models.Title, error) {
	p, err := s.Profile(profileID)
	if err != nil {
		return nil, err
	}
	return p.MyList, nil
}

// ToggleMyList removes the title from the profile's list if present, and
// appends it otherwise. It returns whether the title is now listed.
func (s *Store) ToggleMyList(profileID, titleID string) (bool, []models.Title, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pi := s.profileIndexLocked(profileID)
	if pi < 0 {
		return false, nil, ErrProfileNotFound
	}
	p := &s.profiles[pi]

	for i, t := range p.MyList {
		if t.ID == titleID {
			p.MyList = append(p.MyList[:i:i], p.MyList[i+1:]...)
			return false, cloneTitles(p.MyList), nil
		}
	}

	t, ok := s.lookupLocked(titleID)
	if !ok {
		return false, nil, ErrTitleNotFound
	}
	p.MyList = append(p.MyList, t.Clone())
	return true, cloneTitles(p.MyList), nil
}

func (s *Store) profileIndexLocked(id string) int {
	for i, p := range s.profiles {
		if p.ID == id {
			return i
		}
	}
	return -1
}
