package venues

import (
	"time"

	"gorm.io/datatypes"
)

const DefaultSeekingDescription = "We are looking for an exciting artist to perform here!"

type Venue struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null;uniqueIndex:idx_venues_name" json:"name"`
	City    string `gorm:"type:varchar(120);not null;index:idx_venues_location,priority:2" json:"city"`
	State   string `gorm:"type:varchar(120);not null;index:idx_venues_location,priority:1" json:"state"`
	Address string `gorm:"type:varchar(120);not null" json:"address"`

	Genres datatypes.JSONSlice[string] `gorm:"not null" json:"genres"`

	Phone        string `gorm:"type:varchar(120)" json:"phone"`
	ImageLink    string `gorm:"type:varchar(500)" json:"image_link"`
	Website      string `json:"website"`
	FacebookLink string `gorm:"type:varchar(120)" json:"facebook_link"`

	SeekingTalent      bool   `gorm:"not null" json:"seeking_talent"`
	SeekingDescription string `gorm:"type:varchar(500)" json:"seeking_description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Location is the (city, state) pair venues are grouped by.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

func (v Venue) Location() Location {
	return Location{City: v.City, State: v.State}
}
