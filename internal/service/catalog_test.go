package service

import (
	"testing"

	"ArcadeFlow/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFilterGames(t *testing.T) {
	games := []*model.Game{
		{ID: 1, Title: "Space Explorer", Description: "asteroid fields", Category: "Adventure"},
		{ID: 2, Title: "Puzzle Master", Description: "logic", Category: "Puzzle"},
		{ID: 3, Title: "Tiny Puzzles", Description: "small", Category: "Puzzle"},
	}
	ids := func(gs []*model.Game) []uint64 {
		out := []uint64{}
		for _, g := range gs {
			out = append(out, g.ID)
		}
		return out
	}

	tests := []struct {
		name     string
		search   string
		category string
		want     []uint64
	}{
		{"no filters", "", "", []uint64{1, 2, 3}},
		{"all category", "", "ALL", []uint64{1, 2, 3}},
		{"category only", "", "Puzzle", []uint64{2, 3}},
		{"category is case-sensitive", "", "puzzle", []uint64{}},
		{"search description", "ASTEROID", "", []uint64{1}},
		{"search category text", "puzz", "", []uint64{2, 3}},
		{"search and category", "tiny", "Puzzle", []uint64{3}},
		{"no match", "zzz", "", []uint64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterGames(games, tt.search, tt.category)))
		})
	}
}

func TestBuildCategoryFacets(t *testing.T) {
	games := []*model.Game{
		{ID: 1, Category: "Puzzle"},
		{ID: 2, Category: "Action"},
		{ID: 3, Category: "Puzzle"},
		{ID: 4, Category: ""},
	}
	assert.Equal(t, []CategoryFacet{{Name: "Puzzle", Count: 2}, {Name: "Action", Count: 1}}, BuildCategoryFacets(games))
	assert.Equal(t, []CategoryFacet{}, BuildCategoryFacets(nil))
}

func TestMeanAndGrouping(t *testing.T) {
	ratings := []*model.Rating{
		{GameID: 1, Rating: 5},
		{GameID: 1, Rating: 4},
		{GameID: 1, Rating: 5},
		{GameID: 2, Rating: 2},
	}
	assert.InDelta(t, 4.6666666, mean(ratings[:3]), 1e-6)
	assert.Zero(t, mean(nil))
	avg := averagesByGame(ratings)
	assert.Len(t, avg, 2)
	assert.Equal(t, 2.0, avg[2])
}
