package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormNumber_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want int
		set  bool
	}{
		{"number", `{"n": 87}`, 87, true},
		{"float truncates", `{"n": 87.9}`, 87, true},
		{"numeric string", `{"n": " 42 "}`, 42, true},
		{"above range", `{"n": 250}`, 250, true},
		{"word", `{"n": "ninety"}`, 0, false},
		{"empty string", `{"n": ""}`, 0, false},
		{"null", `{"n": null}`, 0, false},
		{"bool", `{"n": true}`, 0, false},
		{"missing", `{}`, 0, false},
		{"NaN string", `{"n": "NaN"}`, 0, false},
		{"Infinity string", `{"n": "Infinity"}`, 0, false},
		{"negative Inf string", `{"n": "-Inf"}`, 0, false},
		{"overflowing exponent", `{"n": "1e400"}`, 0, false},
		{"too large for int", `{"n": "1e300"}`, 0, true},
		{"too large number literal", `{"n": 1e300}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				N FormNumber `json:"n"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.json), &v))
			assert.Equal(t, tt.set, v.N.Set)
			assert.Equal(t, tt.want, v.N.Int(0))
		})
	}
}

func TestFormNumber_IntFallback(t *testing.T) {
	assert.Equal(t, 2026, FormNumber{}.Int(2026))
	assert.Equal(t, 2026, Number(0).Int(2026))
	assert.Equal(t, 1999, Number(1999).Int(2026))
	assert.Equal(t, 2026, FormNumber{Value: 1e300, Set: true}.Int(2026))
	assert.Equal(t, 2026, FormNumber{Value: -1e300, Set: true}.Int(2026))
	assert.Equal(t, -5, FormNumber{Value: -5.7, Set: true}.Int(2026))
}

func TestTitleForm_NonFiniteNumbersFallBack(t *testing.T) {
	for _, raw := range []string{"NaN", "Infinity", "-Inf", "1e300"} {
		t.Run(raw, func(t *testing.T) {
			var form TitleForm
			body := `{"title":"x","matchScore":"` + raw + `","year":"` + raw + `"}`
			require.NoError(t, json.Unmarshal([]byte(body), &form))
			assert.Equal(t, 0, form.MatchScore.Int(0))
			assert.Equal(t, 2026, form.Year.Int(2026))
		})
	}
}

func TestRecommendations_List(t *testing.T) {
	assert.NotNil(t, Unavailable(ReasonTransport).List())
	assert.Empty(t, Unavailable(ReasonTransport).List())

	empty := Found(nil)
	assert.Equal(t, StatusEmpty, empty.Status)
	assert.NotNil(t, empty.Titles)

	found := Found([]Title{{ID: "a"}})
	assert.Equal(t, StatusItems, found.Status)
	assert.Len(t, found.List(), 1)
}

func TestImageURL(t *testing.T) {
	view := NewTitleView(Title{BackdropParams: "space", PosterParams: "space_poster"})
	assert.Equal(t, "https://picsum.photos/seed/space/1280/720", view.BackdropURL)
	assert.Equal(t, "https://picsum.photos/seed/space_poster/300/450", view.PosterURL)
}
