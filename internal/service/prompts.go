package service

import (
	"fmt"
	"strings"

	"sflix-catalog-service/internal/gemini"
	"sflix-catalog-service/internal/models"
)

const (
	queryItemCount      = 6
	categoryItemCount   = 8
	queryTemperature    = 0.7
	categoryTemperature = 0.8
)

// titleListSchema constrains the generator to an array of title objects.
var titleListSchema = gemini.Schema{
	"type": "ARRAY",
	"items": gemini.Schema{
		"type": "OBJECT",
		"properties": gemini.Schema{
			"id":          gemini.Schema{"type": "STRING"},
			"title":       gemini.Schema{"type": "STRING"},
			"description": gemini.Schema{"type": "STRING"},
			"matchScore":  gemini.Schema{"type": "INTEGER"},
			"year":        gemini.Schema{"type": "INTEGER"},
			"ageRating":   gemini.Schema{"type": "STRING"},
			"duration":    gemini.Schema{"type": "STRING"},
			"genre": gemini.Schema{
				"type":  "ARRAY",
				"items": gemini.Schema{"type": "STRING"},
			},
			"isOriginal": gemini.Schema{"type": "BOOLEAN"},
		},
		"required": []string{"id", "title", "description", "matchScore", "year", "ageRating", "duration", "genre"},
	},
}

func queryPrompt(query string) string {
	return fmt.Sprintf(`You are an engine for a streaming service called SFLIX.
Generate a list of %d fictional or real movie/series recommendations based on this user search/mood: %q.
Make them sound exciting.
For 'id', use a short unique string.
For 'matchScore', give a number between 70 and 99.
For 'ageRating', use standard ratings like TV-MA, PG-13, R.
For 'duration', use format like "1h 45m" or "2 Seasons".`, queryItemCount, query)
}

func categoryPrompt(category string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d unique, creative fictional movie or series titles for the category: %q.\n", categoryItemCount, category)
	if category == models.OriginalsLabel {
		b.WriteString("Make them sound prestigious and high-budget.\n")
	}
	b.WriteString("For 'id', use a random string.")
	return b.String()
}

func queryRequest(query string) gemini.GenerateRequest {
	return gemini.GenerateRequest{Prompt: queryPrompt(query), Schema: titleListSchema, Temperature: queryTemperature}
}

func categoryRequest(category string) gemini.GenerateRequest {
	return gemini.GenerateRequest{Prompt: categoryPrompt(category), Schema: titleListSchema, Temperature: categoryTemperature}
}

// querySeeds derives artwork seeds from the generated id and list position,
// so seeds stay distinct even when the generator repeats ids.
func querySeeds(id string, index int) (backdrop, poster string) {
	return fmt.Sprintf("movie_%s_bg_%d", id, index), fmt.Sprintf("movie_%s_poster_%d", id, index)
}

// categorySeeds derives artwork seeds from the category label and position only.
func categorySeeds(category string, index int) (backdrop, poster string) {
	label := strings.Join(strings.Fields(category), "")
	return fmt.Sprintf("%s_%d_bg", label, index), fmt.Sprintf("%s_%d_poster", label, index)
}
