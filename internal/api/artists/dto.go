package artists

import (
	"time"

	"booking-app/internal/api/forms"
	"booking-app/internal/domain/artists"
)

type ListDTO struct {
	Artists []artists.Basic `json:"artists"`
}

type SearchDTO struct {
	SearchTerm string            `json:"search_term"`
	Count      int               `json:"count"`
	Data       []artists.Summary `json:"data"`
}

// ShowEntryDTO is one show on the artist page, seen from the venue side.
type ShowEntryDTO struct {
	VenueID        uint      `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

type ArtistDetailDTO struct {
	artists.Artist

	PastShows          []ShowEntryDTO `json:"past_shows"`
	UpcomingShows      []ShowEntryDTO `json:"upcoming_shows"`
	PastShowsCount     int            `json:"past_shows_count"`
	UpcomingShowsCount int            `json:"upcoming_shows_count"`
}

type FormDTO struct {
	ID      uint             `json:"id,omitempty"`
	Form    forms.ArtistForm `json:"form"`
	Choices forms.Choices    `json:"choices"`
}

type MessageDTO struct {
	Message string          `json:"message"`
	Artist  *artists.Artist `json:"artist,omitempty"`
}
