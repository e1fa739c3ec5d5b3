package forms

import (
	"strings"
	"time"

	"booking-app/internal/domain/shows"
)

// StartTimeLayouts are tried in order when parsing start_time. Layouts
// without a zone are read as UTC.
var StartTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

type ShowForm struct {
	ArtistID  uint   `form:"artist_id" json:"artist_id" binding:"required,gt=0"`
	VenueID   uint   `form:"venue_id" json:"venue_id" binding:"required,gt=0"`
	StartTime string `form:"start_time" json:"start_time" binding:"required"`
}

func (f ShowForm) Show() (*shows.Show, error) {
	start, err := ParseStartTime(f.StartTime)
	if err != nil {
		return nil, err
	}
	return &shows.Show{
		ArtistID:  f.ArtistID,
		VenueID:   f.VenueID,
		StartTime: start,
	}, nil
}

func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range StartTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, invalid("start_time", "must look like 2006-01-02 15:04:05")
}
