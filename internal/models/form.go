package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// FormNumber is a loosely typed numeric form field. It accepts JSON numbers
// and numeric strings; anything else decodes to zero.
type FormNumber struct {
	Value float64
	Set   bool
}

// UnmarshalJSON never fails so a bad number cannot reject the whole form.
func (n *FormNumber) UnmarshalJSON(data []byte) error {
	*n = FormNumber{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
	} else {
		raw = string(data)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*n = FormNumber{Value: v, Set: true}
	return nil
}

// Int truncates the value, returning fallback when it is unset, zero or
// does not fit in an int.
func (n FormNumber) Int(fallback int) int {
	if !n.Set || n.Value >= math.MaxInt64 || n.Value < math.MinInt64 || int(n.Value) == 0 {
		return fallback
	}
	return int(n.Value)
}

// Number returns a form number holding v.
func Number(v int) FormNumber {
	return FormNumber{Value: float64(v), Set: true}
}

// TitleForm is the request body for creating or editing a title.
// Genres is a comma separated list.
type TitleForm struct {
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description"`
	MatchScore     FormNumber `json:"matchScore"`
	Year           FormNumber `json:"year"`
	AgeRating      string     `json:"ageRating"`
	Duration       string     `json:"duration"`
	Genres         string     `json:"genres"`
	BackdropParams string     `json:"backdropParams"`
	PosterParams   string     `json:"posterParams"`
	IsOriginal     bool       `json:"isOriginal"`
}
