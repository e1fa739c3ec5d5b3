package artists

import (
	"time"

	"gorm.io/datatypes"
)

const DefaultSeekingDescription = "We are looking for a venue to perform at!"

type Artist struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null;uniqueIndex:idx_artists_name" json:"name"`
	City  string `gorm:"type:varchar(120);not null" json:"city"`
	State string `gorm:"type:varchar(120);not null" json:"state"`
	Phone string `gorm:"type:varchar(120)" json:"phone"`

	Genres datatypes.JSONSlice[string] `gorm:"not null" json:"genres"`

	ImageLink    string  `gorm:"type:varchar(500)" json:"image_link"`
	Website      *string `json:"website,omitempty"`
	FacebookLink *string `gorm:"type:varchar(120)" json:"facebook_link,omitempty"`

	SeekingVenue       bool   `gorm:"not null" json:"seeking_venue"`
	SeekingDescription string `gorm:"type:varchar(500)" json:"seeking_description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary is the projection returned by artist search.
type Summary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Basic is the projection used by the artist listing.
type Basic struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

func (a Artist) Basic() Basic {
	return Basic{ID: a.ID, Name: a.Name, City: a.City, State: a.State}
}
