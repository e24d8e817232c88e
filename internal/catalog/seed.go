package catalog

import "sflix-catalog-service/internal/models"

// InitialTitles is the bootstrap catalog.
var InitialTitles = []models.Title{
	models.FallbackHero,
	{
		ID:             "t1",
		Title:          "The Silent Sea",
		Description:    "Space explorers try to retrieve samples from an abandoned research facility steeped in classified secrets.",
		MatchScore:     95,
		Year:           2023,
		AgeRating:      "TV-14",
		Duration:       "1h 50m",
		Genre:          []string{"Sci-Fi", "Mystery"},
		BackdropParams: "space",
		PosterParams:   "space_poster",
	},
	{
		ID:             "t2",
		Title:          "Red Notice",
		Description:    "An FBI profiler pursues the world's most wanted art thief, who becomes his reluctant partner in crime.",
		MatchScore:     89,
		Year:           2022,
		AgeRating:      "PG-13",
		Duration:       "1h 58m",
		Genre:          []string{"Action", "Comedy"},
		BackdropParams: "action",
		PosterParams:   "action_poster",
	},
	{
		ID:             "t3",
		Title:          "Arcane",
		Description:    "Amid the stark discord of twin cities Piltover and Zaun, two sisters fight on rival sides of a war between magic and technologies.",
		MatchScore:     99,
		Year:           2024,
		AgeRating:      "TV-14",
		Duration:       "2 Seasons",
		Genre:          []string{"Animation", "Fantasy"},
		BackdropParams: "fantasy",
		PosterParams:   "fantasy_poster",
		IsOriginal:     true,
	},
	{
		ID:             "t4",
		Title:          "Chef's Table: BBQ",
		Description:    "The critically acclaimed series delves into the smoky, juicy world of barbecue.",
		MatchScore:     92,
		Year:           2021,
		AgeRating:      "TV-MA",
		Duration:       "4 Episodes",
		Genre:          []string{"Documentary"},
		BackdropParams: "bbq",
		PosterParams:   "bbq_poster",
		IsOriginal:     true,
	},
	{
		ID:             "o1",
		Title:          "Stranger Things",
		Description:    "When a young boy vanishes, a small town uncovers a mystery involving secret experiments, terrifying supernatural forces, and one strange little girl.",
		MatchScore:     99,
		Year:           2022,
		AgeRating:      "TV-14",
		Duration:       "4 Seasons",
		Genre:          []string{"Horror", "Sci-Fi"},
		BackdropParams: "stranger",
		PosterParams:   "stranger_poster",
		IsOriginal:     true,
	},
	{
		ID:             "o2",
		Title:          "The Crown",
		Description:    "Follows the political rivalries and romance of Queen Elizabeth II's reign and the events that shaped the second half of the twentieth century.",
		MatchScore:     96,
		Year:           2023,
		AgeRating:      "TV-MA",
		Duration:       "6 Seasons",
		Genre:          []string{"Drama", "History"},
		BackdropParams: "crown",
		PosterParams:   "crown_poster",
		IsOriginal:     true,
	},
}

// InitialProfiles are the profiles offered on first launch.
var InitialProfiles = []models.UserProfile{
	{ID: "1", Name: "Lucas", AvatarColor: "bg-blue-600"},
	{ID: "2", Name: "Julia", AvatarColor: "bg-red-600"},
	{ID: "3", Name: "Grandma", AvatarColor: "bg-green-600"},
	{ID: "4", Name: "Kids", AvatarColor: "bg-yellow-500", IsKid: true},
}
