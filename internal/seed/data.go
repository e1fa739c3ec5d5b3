package seed

import (
	"time"

	"booking-app/internal/domain/artists"
	"booking-app/internal/domain/venues"
)

func strPtr(s string) *string { return &s }

var sampleVenues = []venues.Venue{
	{
		Name:               "The Musical Hop",
		Genres:             []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
		Address:            "1015 Folsom Street",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "123-123-1234",
		Website:            "https://www.themusicalhop.com",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=400&q=60",
	},
	{
		Name:               "The Dueling Pianos Bar",
		Genres:             []string{"Classical", "R&B", "Hip-Hop"},
		Address:            "335 Delancey Street",
		City:               "New York",
		State:              "NY",
		Phone:              "914-003-1132",
		Website:            "https://www.theduelingpianos.com",
		FacebookLink:       "https://www.facebook.com/theduelingpianos",
		SeekingTalent:      false,
		SeekingDescription: venues.DefaultSeekingDescription,
		ImageLink:          "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=750&q=80",
	},
	{
		Name:               "Park Square Live Music & Coffee",
		Genres:             []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
		Address:            "34 Whiskey Moore Ave",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "415-000-1234",
		Website:            "https://www.parksquarelivemusicandcoffee.com",
		FacebookLink:       "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		SeekingTalent:      false,
		SeekingDescription: venues.DefaultSeekingDescription,
		ImageLink:          "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=747&q=80",
	},
}

var sampleArtists = []artists.Artist{
	{
		Name:               "Guns N Petals",
		Genres:             []string{"Rock n Roll"},
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Website:            strPtr("https://www.gunsnpetalsband.com"),
		FacebookLink:       strPtr("https://www.facebook.com/GunsNPetals"),
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=300&q=80",
	},
	{
		Name:               "Matt Quevedo",
		Genres:             []string{"Jazz"},
		City:               "New York",
		State:              "NY",
		Phone:              "300-400-5000",
		FacebookLink:       strPtr("https://www.facebook.com/mattquevedo923251523"),
		SeekingVenue:       false,
		SeekingDescription: artists.DefaultSeekingDescription,
		ImageLink:          "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=334&q=80",
	},
	{
		Name:               "The Wild Sax Band",
		Genres:             []string{"Jazz", "Classical"},
		City:               "San Francisco",
		State:              "CA",
		Phone:              "432-325-5432",
		SeekingVenue:       false,
		SeekingDescription: artists.DefaultSeekingDescription,
		ImageLink:          "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=794&q=80",
	},
}

type sampleShow struct {
	venue  string
	artist string
	start  time.Time
}

var sampleShows = []sampleShow{
	{"The Musical Hop", "Guns N Petals", time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{"Park Square Live Music & Coffee", "Matt Quevedo", time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{"Park Square Live Music & Coffee", "The Wild Sax Band", time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	{"Park Square Live Music & Coffee", "The Wild Sax Band", time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	{"Park Square Live Music & Coffee", "The Wild Sax Band", time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
}
