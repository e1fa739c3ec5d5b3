package repo

import (
	"context"
	"fmt"
	"time"

	"booking-app/internal/domain/artists"
	"booking-app/internal/domain/shows"
	"booking-app/internal/domain/venues"

	"gorm.io/gorm"
)

type ShowRepo interface {
	Create(ctx context.Context, s *shows.Show) error
	Get(ctx context.Context, id uint) (*shows.Show, error)
	List(ctx context.Context) ([]shows.Show, error)
	Update(ctx context.Context, id uint, fields *shows.Show) (*shows.Show, error)
	ShowsFor(ctx context.Context, ownerID uint, role shows.Role) ([]shows.Show, error)
	UpcomingCounts(ctx context.Context, role shows.Role, ownerIDs []uint, now time.Time) (map[uint]int, error)
	Count(ctx context.Context) (int64, error)
}

type showRepo struct{ db *gorm.DB }

func NewShowRepo(db *gorm.DB) ShowRepo {
	return &showRepo{db: db}
}

// Create books the show and copies the current venue and artist names onto it.
func (r *showRepo) Create(ctx context.Context, s *shows.Show) error {
	s.StartTime = normalizeStart(s.StartTime)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		venueName, artistName, err := resolveParties(tx, s.VenueID, s.ArtistID)
		if err != nil {
			return err
		}
		s.VenueName = venueName
		s.ArtistName = artistName
		return tx.Omit("Venue", "Artist").Create(s).Error
	})
	return wrap("create show", err)
}

func (r *showRepo) Get(ctx context.Context, id uint) (*shows.Show, error) {
	var s shows.Show
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		First(&s, id).Error
	if err != nil {
		return nil, wrap(fmt.Sprintf("get show %d", id), err)
	}
	return &s, nil
}

// List returns all shows ordered by id, with the artist preloaded for its
// image link.
func (r *showRepo) List(ctx context.Context) ([]shows.Show, error) {
	var out []shows.Show
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Order("id ASC").
		Find(&out).Error
	return out, wrap("list shows", err)
}

// Update re-points a show. Names are copied again only for a side whose id
// changed.
func (r *showRepo) Update(ctx context.Context, id uint, fields *shows.Show) (*shows.Show, error) {
	var out shows.Show
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, id).Error; err != nil {
			return err
		}
		venueName, artistName, err := resolveParties(tx, fields.VenueID, fields.ArtistID)
		if err != nil {
			return err
		}
		updates := map[string]interface{}{
			"venue_id":   fields.VenueID,
			"artist_id":  fields.ArtistID,
			"start_time": normalizeStart(fields.StartTime),
		}
		if fields.VenueID != out.VenueID {
			updates["venue_name"] = venueName
		}
		if fields.ArtistID != out.ArtistID {
			updates["artist_name"] = artistName
		}
		if err := tx.Model(&shows.Show{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&out, id).Error
	})
	if err != nil {
		return nil, wrap(fmt.Sprintf("update show %d", id), err)
	}
	return &out, nil
}

// ShowsFor returns every show of one venue or artist, oldest first, with both
// parties preloaded.
func (r *showRepo) ShowsFor(ctx context.Context, ownerID uint, role shows.Role) ([]shows.Show, error) {
	var out []shows.Show
	err := ownerShowsQuery(r.db.WithContext(ctx), ownerID, role).
		Preload("Venue").
		Preload("Artist").
		Order("start_time ASC, id ASC").
		Find(&out).Error
	return out, wrap(fmt.Sprintf("shows for %s %d", role, ownerID), err)
}

// UpcomingCounts counts shows starting after now, per venue or artist id.
// A nil ownerIDs counts every owner; ids without upcoming shows are absent
// from the map.
func (r *showRepo) UpcomingCounts(ctx context.Context, role shows.Role, ownerIDs []uint, now time.Time) (map[uint]int, error) {
	counts := make(map[uint]int)
	if ownerIDs != nil && len(ownerIDs) == 0 {
		return counts, nil
	}

	col := role.Column()
	q := upcomingShowsQuery(r.db.WithContext(ctx), now).
		Select(col + " AS owner_id, COUNT(*) AS n").
		Group(col)
	if ownerIDs != nil {
		q = q.Where(col+" IN ?", ownerIDs)
	}

	var rows []struct {
		OwnerID uint
		N       int
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, wrap("count upcoming shows", err)
	}
	for _, row := range rows {
		counts[row.OwnerID] = row.N
	}
	return counts, nil
}

func (r *showRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&shows.Show{}).Count(&n).Error
	return n, wrap("count shows", err)
}

func resolveParties(tx *gorm.DB, venueID, artistID uint) (venueName, artistName string, err error) {
	var v venues.Venue
	if err := tx.Select("id", "name").First(&v, venueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", "", fmt.Errorf("venue %d: %w", venueID, ErrNotFound)
		}
		return "", "", err
	}
	var a artists.Artist
	if err := tx.Select("id", "name").First(&a, artistID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", "", fmt.Errorf("artist %d: %w", artistID, ErrNotFound)
		}
		return "", "", err
	}
	return v.Name, a.Name, nil
}

func normalizeStart(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
