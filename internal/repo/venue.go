package repo

import (
	"context"
	"fmt"

	"booking-app/internal/domain/shows"
	"booking-app/internal/domain/venues"

	"gorm.io/gorm"
)

type VenueRepo interface {
	Create(ctx context.Context, v *venues.Venue) error
	Get(ctx context.Context, id uint) (*venues.Venue, error)
	List(ctx context.Context) ([]venues.Venue, error)
	Update(ctx context.Context, id uint, fields *venues.Venue) (*venues.Venue, error)
	Delete(ctx context.Context, id uint) error
	FindByName(ctx context.Context, name string) (*venues.Venue, error)
	Search(ctx context.Context, term string) ([]venues.Venue, error)
	Recent(ctx context.Context, limit int) ([]venues.Venue, error)
	Count(ctx context.Context) (int64, error)
}

// venueEditable lists the columns an edit overwrites.
var venueEditable = []string{
	"name", "city", "state", "address", "genres", "phone", "image_link",
	"website", "facebook_link", "seeking_talent", "seeking_description",
}

type venueRepo struct{ db *gorm.DB }

func NewVenueRepo(db *gorm.DB) VenueRepo {
	return &venueRepo{db: db}
}

func (r *venueRepo) Create(ctx context.Context, v *venues.Venue) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := nameTaken(tx, &venues.Venue{}, v.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("venue %q: %w", v.Name, ErrConflict)
		}
		return tx.Create(v).Error
	})
	return wrap("create venue", err)
}

func (r *venueRepo) Get(ctx context.Context, id uint) (*venues.Venue, error) {
	var v venues.Venue
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, wrap(fmt.Sprintf("get venue %d", id), err)
	}
	return &v, nil
}

// List returns every venue ordered by state, city and name, which is the
// order the grouped listing is built in.
func (r *venueRepo) List(ctx context.Context) ([]venues.Venue, error) {
	var out []venues.Venue
	err := r.db.WithContext(ctx).
		Order("state ASC, city ASC, name ASC").
		Find(&out).Error
	return out, wrap("list venues", err)
}

func (r *venueRepo) Update(ctx context.Context, id uint, fields *venues.Venue) (*venues.Venue, error) {
	var out venues.Venue
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, id).Error; err != nil {
			return err
		}
		taken, err := nameTaken(tx, &venues.Venue{}, fields.Name, id)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("venue %q: %w", fields.Name, ErrConflict)
		}
		if err := tx.Model(&out).Select(venueEditable).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&out, id).Error
	})
	if err != nil {
		return nil, wrap(fmt.Sprintf("update venue %d", id), err)
	}
	return &out, nil
}

// Delete removes the venue and every show booked into it.
func (r *venueRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v venues.Venue
		if err := tx.First(&v, id).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", id).Delete(&shows.Show{}).Error; err != nil {
			return err
		}
		return tx.Delete(&v).Error
	})
	return wrap(fmt.Sprintf("delete venue %d", id), err)
}

// FindByName returns the venue whose name matches exactly.
func (r *venueRepo) FindByName(ctx context.Context, name string) (*venues.Venue, error) {
	var out venues.Venue
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error; err != nil {
		return nil, wrap(fmt.Sprintf("find venue %q", name), err)
	}
	return &out, nil
}

func (r *venueRepo) Search(ctx context.Context, term string) ([]venues.Venue, error) {
	var out []venues.Venue
	err := nameContains(r.db.WithContext(ctx).Model(&venues.Venue{}), term).
		Order("name ASC").
		Find(&out).Error
	return out, wrap("search venues", err)
}

func (r *venueRepo) Recent(ctx context.Context, limit int) ([]venues.Venue, error) {
	var out []venues.Venue
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, wrap("recent venues", err)
}

func (r *venueRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&venues.Venue{}).Count(&n).Error
	return n, wrap("count venues", err)
}
