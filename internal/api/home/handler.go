package home

import (
	"net/http"

	"booking-app/internal/api/respond"
	"booking-app/internal/domain/artists"
	"booking-app/internal/domain/venues"
	"booking-app/internal/repo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecentLimit is how many recently listed venues and artists the home page shows.
const RecentLimit = 10

type TotalsDTO struct {
	Venues  int64 `json:"venues"`
	Artists int64 `json:"artists"`
	Shows   int64 `json:"shows"`
}

type SummaryDTO struct {
	Totals        TotalsDTO        `json:"totals"`
	RecentVenues  []venues.Summary `json:"recent_venues"`
	RecentArtists []artists.Basic  `json:"recent_artists"`
}

type Handler struct {
	venues  repo.VenueRepo
	artists repo.ArtistRepo
	shows   repo.ShowRepo
	log     *zap.Logger
}

func NewHandler(v repo.VenueRepo, a repo.ArtistRepo, s repo.ShowRepo, log *zap.Logger) *Handler {
	return &Handler{venues: v, artists: a, shows: s, log: log.Named("home")}
}

func (h *Handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()
	var out SummaryDTO
	var err error

	if out.Totals.Venues, err = h.venues.Count(ctx); err != nil {
		respond.Fail(c, h.log, err, "Failed to load summary")
		return
	}
	if out.Totals.Artists, err = h.artists.Count(ctx); err != nil {
		respond.Fail(c, h.log, err, "Failed to load summary")
		return
	}
	if out.Totals.Shows, err = h.shows.Count(ctx); err != nil {
		respond.Fail(c, h.log, err, "Failed to load summary")
		return
	}

	recentVenues, err := h.venues.Recent(ctx, RecentLimit)
	if err != nil {
		respond.Fail(c, h.log, err, "Failed to load summary")
		return
	}
	recentArtists, err := h.artists.Recent(ctx, RecentLimit)
	if err != nil {
		respond.Fail(c, h.log, err, "Failed to load summary")
		return
	}

	out.RecentVenues = make([]venues.Summary, 0, len(recentVenues))
	for _, v := range recentVenues {
		out.RecentVenues = append(out.RecentVenues, venues.Summary{ID: v.ID, Name: v.Name})
	}
	out.RecentArtists = make([]artists.Basic, 0, len(recentArtists))
	for _, a := range recentArtists {
		out.RecentArtists = append(out.RecentArtists, a.Basic())
	}

	c.JSON(http.StatusOK, out)
}
