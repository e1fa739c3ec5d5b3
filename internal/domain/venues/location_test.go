package venues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByLocation(t *testing.T) {
	list := []Venue{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
	}
	upcoming := map[uint]int{3: 1}

	groups := GroupByLocation(list, upcoming)

	require.Len(t, groups, 2)
	assert.Equal(t, "San Francisco", groups[0].City)
	assert.Equal(t, "CA", groups[0].State)
	assert.Equal(t, []Summary{
		{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 0},
		{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1},
	}, groups[0].Venues)
	assert.Equal(t, "New York", groups[1].City)
	assert.Len(t, groups[1].Venues, 1)
}

func TestGroupByLocation_SameCityDifferentState(t *testing.T) {
	list := []Venue{
		{ID: 1, Name: "A", City: "Portland", State: "OR"},
		{ID: 2, Name: "B", City: "Portland", State: "ME"},
		{ID: 3, Name: "C", City: "Portland", State: "OR"},
	}

	groups := GroupByLocation(list, nil)

	require.Len(t, groups, 2)
	seen := map[Location]bool{}
	for _, g := range groups {
		loc := Location{City: g.City, State: g.State}
		assert.False(t, seen[loc], "duplicate group for %v", loc)
		seen[loc] = true
	}
	assert.Len(t, groups[0].Venues, 2)
}

func TestGroupByLocation_Empty(t *testing.T) {
	groups := GroupByLocation(nil, nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
