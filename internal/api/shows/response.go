package shows

import (
	"time"

	"booking-app/internal/domain/shows"
)

func toShowDTO(s shows.Show, now time.Time) ShowDTO {
	out := ShowDTO{
		ID:         s.ID,
		VenueID:    s.VenueID,
		VenueName:  s.VenueName,
		ArtistID:   s.ArtistID,
		ArtistName: s.ArtistName,
		StartTime:  s.StartTime,
		Past:       shows.IsPast(s.StartTime, now),
	}
	if s.Artist != nil {
		out.ArtistImageLink = s.Artist.ImageLink
	}
	if s.Venue != nil {
		out.VenueImageLink = s.Venue.ImageLink
	}
	return out
}
