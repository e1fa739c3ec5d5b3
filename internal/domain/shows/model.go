package shows

import (
	"time"

	"booking-app/internal/domain/artists"
	"booking-app/internal/domain/venues"
)

// Show books one artist into one venue. VenueName and ArtistName are copies
// taken when the show is created; renaming a venue or artist later does not
// touch them.
type Show struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VenueID   uint          `gorm:"not null;index" json:"venue_id"`
	Venue     *venues.Venue `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	VenueName string        `json:"venue_name"`

	ArtistID   uint            `gorm:"not null;index" json:"artist_id"`
	Artist     *artists.Artist `gorm:"constraint:OnUpdate:CASCADE;" json:"-"`
	ArtistName string          `json:"artist_name"`

	StartTime time.Time `gorm:"not null;index" json:"start_time"`

	CreatedAt time.Time `json:"created_at"`
}

// Role selects which side of a show an owner id refers to.
type Role string

const (
	RoleVenue  Role = "venue"
	RoleArtist Role = "artist"
)

func (r Role) Column() string {
	if r == RoleArtist {
		return "artist_id"
	}
	return "venue_id"
}
