package models

// UserProfile is a viewer profile with its personal list.
type UserProfile struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	AvatarColor string  `json:"avatarColor"`
	IsKid       bool    `json:"isKid"`
	MyList      []Title `json:"myList"`
}

// Clone returns a deep copy of p.
func (p UserProfile) Clone() UserProfile {
	list := make([]Title, 0, len(p.MyList))
	for _, t := range p.MyList {
		list = append(list, t.Clone())
	}
	p.MyList = list
	return p
}

// ToggleMyListRequest is the request body for toggling a title on a profile's list.
type ToggleMyListRequest struct {
	TitleID string `json:"titleId" validate:"required"`
}

// ToggleMyListResponse reports the list after a toggle.
type ToggleMyListResponse struct {
	ProfileID string      `json:"profileId"`
	InList    bool        `json:"inList"`
	MyList    []TitleView `json:"myList"`
}

// ProfileColors are picked at random for newly added profiles.
var ProfileColors = []string{"bg-purple-600", "bg-pink-600", "bg-indigo-600", "bg-orange-600"}

// ProfileView is the response shape for a profile.
type ProfileView struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	AvatarColor string      `json:"avatarColor"`
	IsKid       bool        `json:"isKid"`
	MyList      []TitleView `json:"myList"`
}

// NewProfileView attaches artwork URLs to the titles on p's list.
func NewProfileView(p UserProfile) ProfileView {
	return ProfileView{
		ID:          p.ID,
		Name:        p.Name,
		AvatarColor: p.AvatarColor,
		IsKid:       p.IsKid,
		MyList:      NewTitleViews(p.MyList),
	}
}
