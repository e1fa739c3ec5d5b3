package venues

// Summary is the lightweight projection used by listings and search.
type Summary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// LocationGroup is one (city, state) bucket of the venue listing.
type LocationGroup struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// GroupByLocation buckets list by (city, state). Groups appear in the order
// their first venue appears in list, venues keep their relative order, and a
// pair never produces two groups. upcoming maps venue id to its upcoming show
// count; missing ids count as zero.
func GroupByLocation(list []Venue, upcoming map[uint]int) []LocationGroup {
	groups := make([]LocationGroup, 0)
	index := make(map[Location]int)

	for _, v := range list {
		loc := v.Location()
		i, ok := index[loc]
		if !ok {
			i = len(groups)
			index[loc] = i
			groups = append(groups, LocationGroup{City: loc.City, State: loc.State, Venues: []Summary{}})
		}
		groups[i].Venues = append(groups[i].Venues, Summary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}
	return groups
}
