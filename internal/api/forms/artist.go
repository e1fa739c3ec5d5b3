package forms

import (
	"strings"

	"booking-app/internal/domain/artists"
)

type ArtistForm struct {
	Name               string   `form:"name" json:"name" binding:"required,notblank"`
	City               string   `form:"city" json:"city" binding:"required,notblank"`
	State              string   `form:"state" json:"state" binding:"required,state"`
	Phone              string   `form:"phone" json:"phone"`
	Genres             []string `form:"genres" json:"genres" binding:"required,min=1,dive,genre"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"omitempty,url"`
	Website            string   `form:"website" json:"website" binding:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"omitempty,url"`
	SeekingVenue       Flag     `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f ArtistForm) Artist() *artists.Artist {
	desc := strings.TrimSpace(f.SeekingDescription)
	if desc == "" {
		desc = artists.DefaultSeekingDescription
	}
	return &artists.Artist{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              strings.ToUpper(f.State),
		Phone:              strings.TrimSpace(f.Phone),
		Genres:             append([]string(nil), f.Genres...),
		ImageLink:          f.ImageLink,
		Website:            optional(f.Website),
		FacebookLink:       optional(f.FacebookLink),
		SeekingVenue:       f.SeekingVenue.Or(true),
		SeekingDescription: desc,
	}
}

func ArtistFormFrom(a artists.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             append([]string{}, a.Genres...),
		ImageLink:          a.ImageLink,
		Website:            deref(a.Website),
		FacebookLink:       deref(a.FacebookLink),
		SeekingVenue:       NewFlag(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
