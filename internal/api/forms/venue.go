package forms

import (
	"strings"

	"booking-app/internal/domain/venues"
)

type VenueForm struct {
	Name               string   `form:"name" json:"name" binding:"required,notblank"`
	City               string   `form:"city" json:"city" binding:"required,notblank"`
	State              string   `form:"state" json:"state" binding:"required,state"`
	Address            string   `form:"address" json:"address" binding:"required,notblank"`
	Phone              string   `form:"phone" json:"phone"`
	Genres             []string `form:"genres" json:"genres" binding:"required,min=1,dive,genre"`
	ImageLink          string   `form:"image_link" json:"image_link" binding:"omitempty,url"`
	Website            string   `form:"website" json:"website" binding:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" binding:"omitempty,url"`
	SeekingTalent      Flag     `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

// Venue converts the submitted form into a record, applying the seeking
// defaults for fields that were left out.
func (f VenueForm) Venue() *venues.Venue {
	desc := strings.TrimSpace(f.SeekingDescription)
	if desc == "" {
		desc = venues.DefaultSeekingDescription
	}
	return &venues.Venue{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              strings.ToUpper(f.State),
		Address:            strings.TrimSpace(f.Address),
		Phone:              strings.TrimSpace(f.Phone),
		Genres:             append([]string(nil), f.Genres...),
		ImageLink:          f.ImageLink,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		SeekingTalent:      f.SeekingTalent.Or(true),
		SeekingDescription: desc,
	}
}

// VenueFormFrom prefills the edit form.
func VenueFormFrom(v venues.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             append([]string{}, v.Genres...),
		ImageLink:          v.ImageLink,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      NewFlag(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}
