package venues

import (
	"booking-app/internal/domain/shows"
	"booking-app/internal/domain/venues"
)

func toShowEntries(list []shows.Show) []ShowEntryDTO {
	out := make([]ShowEntryDTO, 0, len(list))
	for _, s := range list {
		e := ShowEntryDTO{
			ArtistID:   s.ArtistID,
			ArtistName: s.ArtistName,
			StartTime:  s.StartTime,
		}
		if s.Artist != nil {
			e.ArtistImageLink = s.Artist.ImageLink
		}
		out = append(out, e)
	}
	return out
}

func toDetail(v venues.Venue, tl shows.Timeline) VenueDetailDTO {
	return VenueDetailDTO{
		Venue:              v,
		PastShows:          toShowEntries(tl.Past),
		UpcomingShows:      toShowEntries(tl.Upcoming),
		PastShowsCount:     tl.PastCount,
		UpcomingShowsCount: tl.UpcomingCount,
	}
}

func toSummaries(list []venues.Venue, upcoming map[uint]int) []venues.Summary {
	out := make([]venues.Summary, 0, len(list))
	for _, v := range list {
		out = append(out, venues.Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming[v.ID]})
	}
	return out
}

func ids(list []venues.Venue) []uint {
	out := make([]uint, 0, len(list))
	for _, v := range list {
		out = append(out, v.ID)
	}
	return out
}
