package repo

import (
	"context"
	"fmt"

	"booking-app/internal/domain/artists"

	"gorm.io/gorm"
)

type ArtistRepo interface {
	Create(ctx context.Context, a *artists.Artist) error
	Get(ctx context.Context, id uint) (*artists.Artist, error)
	List(ctx context.Context) ([]artists.Artist, error)
	Update(ctx context.Context, id uint, fields *artists.Artist) (*artists.Artist, error)
	FindByName(ctx context.Context, name string) (*artists.Artist, error)
	Search(ctx context.Context, term string) ([]artists.Artist, error)
	Recent(ctx context.Context, limit int) ([]artists.Artist, error)
	Count(ctx context.Context) (int64, error)
}

var artistEditable = []string{
	"name", "city", "state", "phone", "genres", "image_link",
	"website", "facebook_link", "seeking_venue", "seeking_description",
}

type artistRepo struct{ db *gorm.DB }

func NewArtistRepo(db *gorm.DB) ArtistRepo {
	return &artistRepo{db: db}
}

func (r *artistRepo) Create(ctx context.Context, a *artists.Artist) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := nameTaken(tx, &artists.Artist{}, a.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("artist %q: %w", a.Name, ErrConflict)
		}
		return tx.Create(a).Error
	})
	return wrap("create artist", err)
}

func (r *artistRepo) Get(ctx context.Context, id uint) (*artists.Artist, error) {
	var a artists.Artist
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, wrap(fmt.Sprintf("get artist %d", id), err)
	}
	return &a, nil
}

func (r *artistRepo) List(ctx context.Context) ([]artists.Artist, error) {
	var out []artists.Artist
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, wrap("list artists", err)
}

func (r *artistRepo) Update(ctx context.Context, id uint, fields *artists.Artist) (*artists.Artist, error) {
	var out artists.Artist
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, id).Error; err != nil {
			return err
		}
		taken, err := nameTaken(tx, &artists.Artist{}, fields.Name, id)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("artist %q: %w", fields.Name, ErrConflict)
		}
		if err := tx.Model(&out).Select(artistEditable).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&out, id).Error
	})
	if err != nil {
		return nil, wrap(fmt.Sprintf("update artist %d", id), err)
	}
	return &out, nil
}

// FindByName returns the artist whose name matches exactly.
func (r *artistRepo) FindByName(ctx context.Context, name string) (*artists.Artist, error) {
	var out artists.Artist
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error; err != nil {
		return nil, wrap(fmt.Sprintf("find artist %q", name), err)
	}
	return &out, nil
}

func (r *artistRepo) Search(ctx context.Context, term string) ([]artists.Artist, error) {
	var out []artists.Artist
	err := nameContains(r.db.WithContext(ctx).Model(&artists.Artist{}), term).
		Order("name ASC").
		Find(&out).Error
	return out, wrap("search artists", err)
}

func (r *artistRepo) Recent(ctx context.Context, limit int) ([]artists.Artist, error) {
	var out []artists.Artist
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, wrap("recent artists", err)
}

func (r *artistRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&artists.Artist{}).Count(&n).Error
	return n, wrap("count artists", err)
}
