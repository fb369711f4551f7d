package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		raw  string
		want Rating
	}{
		{raw: "4", want: 4},
		{raw: `"3"`, want: 3},
		{raw: `" 5 "`, want: 5},
		{raw: "2.0", want: 2},
		{raw: "2.5", want: 0},
		{raw: `"abc"`, want: 0},
		{raw: "null", want: 0},
		{raw: "", want: 0},
		{raw: "true", want: 0},
		{raw: "9", want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRating(tt.raw))
		})
	}
}

func TestRating_Valid(t *testing.T) {
	assert.False(t, Rating(0).Valid())
	assert.True(t, Rating(1).Valid())
	assert.True(t, Rating(5).Valid())
	assert.False(t, Rating(6).Valid())
}

func TestRating_UnmarshalMixedDocument(t *testing.T) {
	doc := `[{"rating": 5}, {"rating": "2"}, {"rating": "great"}, {"rating": null}, {}]`

	var comments []struct {
		Rating Rating `json:"rating"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &comments))
	require.Len(t, comments, 5)

	got := make([]Rating, len(comments))
	for i, c := range comments {
		got[i] = c.Rating
	}
	assert.Equal(t, []Rating{5, 2, 0, 0, 0}, got)
}
