package service

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"sflix-catalog-service/internal/models"
	"sflix-catalog-service/internal/validation"
)

var errNotArray = errors.New("response is not a JSON array")

// generatedTitle mirrors the response schema. Pointer fields let presence be
// told apart from zero values.
type generatedTitle struct {
	ID          *string  `json:"id" validate:"required"`
	Title       *string  `json:"title" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	MatchScore  *int     `json:"matchScore" validate:"required"`
	Year        *int     `json:"year" validate:"required"`
	AgeRating   *string  `json:"ageRating" validate:"required"`
	Duration    *string  `json:"duration" validate:"required"`
	Genre       []string `json:"genre" validate:"required"`
	IsOriginal  *bool    `json:"isOriginal"`
}

// decodeTitles parses the generator output. Any element that breaks the
// schema fails the whole response.
func decodeTitles(v *validation.Validator, text string, seeds func(id string, index int) (string, string)) ([]models.Title, error) {
	raw := bytes.TrimSpace([]byte(text))
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errNotArray
	}

	var items []generatedTitle
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode titles: %w", err)
	}

	titles := make([]models.Title, 0, len(items))
	for i, item := range items {
		if err := v.Validate(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		backdrop, poster := seeds(*item.ID, i)
		t := models.Title{
			ID:             *item.ID,
			Title:          *item.Title,
			Description:    *item.Description,
			MatchScore:     *item.MatchScore,
			Year:           *item.Year,
			AgeRating:      *item.AgeRating,
			Duration:       *item.Duration,
			Genre:          item.Genre,
			BackdropParams: backdrop,
			PosterParams:   poster,
		}
		if item.IsOriginal != nil {
			t.IsOriginal = *item.IsOriginal
		}
		titles = append(titles, t)
	}
	return titles, nil
}
