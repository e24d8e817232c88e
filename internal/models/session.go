package models

// View names the page the front end is showing.
type View string

const (
	ViewHome   View = "HOME"
	ViewSearch View = "SEARCH"
	ViewPlayer View = "PLAYER"
	ViewMyList View = "MY_LIST"
	ViewFilms  View = "FILMS"
)

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	switch v {
	case ViewHome, ViewSearch, ViewPlayer, ViewMyList, ViewFilms:
		return true
	}
	return false
}

// Session is the shared view state of the front end.
type Session struct {
	ActiveProfileID string  `json:"activeProfileId,omitempty"`
	View            View    `json:"view"`
	Selected        *Title  `json:"selected,omitempty"`
	NowPlaying      *Title  `json:"nowPlaying,omitempty"`
	SearchQuery     string  `json:"searchQuery"`
	SearchResults   []Title `json:"searchResults"`
	Searching       bool    `json:"searching"`
}

// SelectProfileRequest is the request body for choosing the active profile.
type SelectProfileRequest struct {
	ProfileID string `json:"profileId" validate:"required"`
}

// SetViewRequest is the request body for switching views.
type SetViewRequest struct {
	View View `json:"view" validate:"required"`
}

// SelectTitleRequest is the request body for opening the detail view.
type SelectTitleRequest struct {
	TitleID string `json:"titleId" validate:"required"`
}

// PlayRequest is the request body for starting playback.
// An empty TitleID plays the current selection.
type PlayRequest struct {
	TitleID string `json:"titleId"`
}

// SessionView is the response shape for the session.
type SessionView struct {
	ActiveProfileID string      `json:"activeProfileId,omitempty"`
	View            View        `json:"view"`
	Selected        *TitleView  `json:"selected,omitempty"`
	NowPlaying      *TitleView  `json:"nowPlaying,omitempty"`
	SearchQuery     string      `json:"searchQuery"`
	SearchResults   []TitleView `json:"searchResults"`
	Searching       bool        `json:"searching"`
}

// NewSessionView attaches artwork URLs to every title in s.
func NewSessionView(s Session) SessionView {
	v := SessionView{
		ActiveProfileID: s.ActiveProfileID,
		View:            s.View,
		SearchQuery:     s.SearchQuery,
		SearchResults:   NewTitleViews(s.SearchResults),
		Searching:       s.Searching,
	}
	if s.Selected != nil {
		tv := NewTitleView(*s.Selected)
		v.Selected = &tv
	}
	if s.NowPlaying != nil {
		tv := NewTitleView(*s.NowPlaying)
		v.NowPlaying = &tv
	}
	return v
}
