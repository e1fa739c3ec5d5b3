package shows

import (
	"time"

	"booking-app/internal/api/forms"
)

// ShowDTO is one row of the show listing.
type ShowDTO struct {
	ID              uint      `json:"id"`
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link,omitempty"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
	Past            bool      `json:"past"`
}

type ListDTO struct {
	Shows []ShowDTO `json:"shows"`
}

type FormDTO struct {
	Form    forms.ShowForm `json:"form"`
	Layouts []string       `json:"start_time_layouts"`
}

type MessageDTO struct {
	Message string   `json:"message"`
	Show    *ShowDTO `json:"show,omitempty"`
}
