package artists

import (
	"booking-app/internal/domain/artists"
	"booking-app/internal/domain/shows"
)

func toShowEntries(list []shows.Show) []ShowEntryDTO {
	out := make([]ShowEntryDTO, 0, len(list))
	for _, s := range list {
		e := ShowEntryDTO{
			VenueID:   s.VenueID,
			VenueName: s.VenueName,
			StartTime: s.StartTime,
		}
		if s.Venue != nil {
			e.VenueImageLink = s.Venue.ImageLink
		}
		out = append(out, e)
	}
	return out
}

func toDetail(a artists.Artist, tl shows.Timeline) ArtistDetailDTO {
	return ArtistDetailDTO{
		Artist:             a,
		PastShows:          toShowEntries(tl.Past),
		UpcomingShows:      toShowEntries(tl.Upcoming),
		PastShowsCount:     tl.PastCount,
		UpcomingShowsCount: tl.UpcomingCount,
	}
}

func toBasics(list []artists.Artist) []artists.Basic {
	out := make([]artists.Basic, 0, len(list))
	for _, a := range list {
		out = append(out, a.Basic())
	}
	return out
}

func toSummaries(list []artists.Artist, upcoming map[uint]int) []artists.Summary {
	out := make([]artists.Summary, 0, len(list))
	for _, a := range list {
		out = append(out, artists.Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: upcoming[a.ID]})
	}
	return out
}

func ids(list []artists.Artist) []uint {
	out := make([]uint, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}
