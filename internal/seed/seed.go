package seed

import (
	"context"
	"errors"

	"booking-app/internal/domain/shows"
	"booking-app/internal/repo"

	"go.uber.org/zap"
)

// Result counts what a Run inserted.
type Result struct {
	Venues  int
	Artists int
	Shows   int
}

// Run loads the sample venues, artists and shows. Records that already exist
// (by name, or by venue, artist and start time for shows) are left alone, so
// running it twice inserts nothing the second time.
func Run(ctx context.Context, vr repo.VenueRepo, ar repo.ArtistRepo, sr repo.ShowRepo, log *zap.Logger) (Result, error) {
	var res Result

	venueIDs := make(map[string]uint, len(sampleVenues))
	for _, sample := range sampleVenues {
		v := sample
		err := vr.Create(ctx, &v)
		switch {
		case err == nil:
			res.Venues++
		case errors.Is(err, repo.ErrConflict):
			existing, ferr := vr.FindByName(ctx, v.Name)
			if ferr != nil {
				return res, ferr
			}
			v = *existing
		default:
			return res, err
		}
		venueIDs[v.Name] = v.ID
	}

	artistIDs := make(map[string]uint, len(sampleArtists))
	for _, sample := range sampleArtists {
		a := sample
		err := ar.Create(ctx, &a)
		switch {
		case err == nil:
			res.Artists++
		case errors.Is(err, repo.ErrConflict):
			existing, ferr := ar.FindByName(ctx, a.Name)
			if ferr != nil {
				return res, ferr
			}
			a = *existing
		default:
			return res, err
		}
		artistIDs[a.Name] = a.ID
	}

	for _, sample := range sampleShows {
		venueID, artistID := venueIDs[sample.venue], artistIDs[sample.artist]

		booked, err := sr.ShowsFor(ctx, venueID, shows.RoleVenue)
		if err != nil {
			return res, err
		}
		if alreadyBooked(booked, artistID, sample) {
			continue
		}

		s := &shows.Show{VenueID: venueID, ArtistID: artistID, StartTime: sample.start}
		if err := sr.Create(ctx, s); err != nil {
			return res, err
		}
		res.Shows++
	}

	log.Info("sample data loaded",
		zap.Int("venues", res.Venues),
		zap.Int("artists", res.Artists),
		zap.Int("shows", res.Shows),
	)
	return res, nil
}

func alreadyBooked(booked []shows.Show, artistID uint, sample sampleShow) bool {
	for _, s := range booked {
		if s.ArtistID == artistID && s.StartTime.Equal(sample.start) {
			return true
		}
	}
	return false
}
