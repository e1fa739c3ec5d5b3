package venues

import (
	"time"

	"booking-app/internal/api/forms"
	"booking-app/internal/domain/venues"
)

// ---------- responses

type AreasDTO struct {
	Areas []venues.LocationGroup `json:"areas"`
}

type SearchDTO struct {
	SearchTerm string           `json:"search_term"`
	Count      int              `json:"count"`
	Data       []venues.Summary `json:"data"`
}

// ShowEntryDTO is one show on the venue page, seen from the artist side.
type ShowEntryDTO struct {
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

type VenueDetailDTO struct {
	venues.Venue

	PastShows          []ShowEntryDTO `json:"past_shows"`
	UpcomingShows      []ShowEntryDTO `json:"upcoming_shows"`
	PastShowsCount     int            `json:"past_shows_count"`
	UpcomingShowsCount int            `json:"upcoming_shows_count"`
}

type FormDTO struct {
	ID      uint            `json:"id,omitempty"`
	Form    forms.VenueForm `json:"form"`
	Choices forms.Choices   `json:"choices"`
}

type MessageDTO struct {
	Message string        `json:"message"`
	Venue   *venues.Venue `json:"venue,omitempty"`
}
