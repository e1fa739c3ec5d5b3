package artists

import (
	"net/http"
	"time"

	"booking-app/internal/api/forms"
	"booking-app/internal/api/respond"
	"booking-app/internal/domain/artists"
	"booking-app/internal/domain/shows"
	"booking-app/internal/repo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	artists repo.ArtistRepo
	shows   repo.ShowRepo
	log     *zap.Logger
	now     func() time.Time
}

func NewHandler(a repo.ArtistRepo, s repo.ShowRepo, log *zap.Logger) *Handler {
	return &Handler{artists: a, shows: s, log: log.Named("artists"), now: time.Now}
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.artists.List(c.Request.Context())
	if err != nil {
		respond.Fail(c, h.log, err, "Failed to load artists")
		return
	}
	c.JSON(http.StatusOK, ListDTO{Artists: toBasics(list)})
}

func (h *Handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	form, err := forms.BindSearch(c)
	if err != nil {
		respond.Fail(c, h.log, err, "An error occurred while searching, please try again")
		return
	}

	found, err := h.artists.Search(ctx, form.Term())
	if err != nil {
		respond.Fail(c, h.log, err, "An error occurred while searching, please try again")
		return
	}
	counts, err := h.shows.UpcomingCounts(ctx, shows.RoleArtist, ids(found), h.now())
	if err != nil {
		respond.Fail(c, h.log, err, "An error occurred while searching, please try again")
		return
	}

	c.JSON(http.StatusOK, SearchDTO{
		SearchTerm: form.SearchTerm,
		Count:      len(found),
		Data:       toSummaries(found, counts),
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := respond.ParamID(c, "id", "Artist")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	a, err := h.artists.Get(ctx, id)
	if err != nil {
		respond.Fail(c, h.log, err, "Artist not found")
		return
	}
	booked, err := h.shows.ShowsFor(ctx, id, shows.RoleArtist)
	if err != nil {
		respond.Fail(c, h.log, err, "Failed to load artist shows")
		return
	}

	c.JSON(http.StatusOK, toDetail(*a, shows.NewTimeline(booked, h.now())))
}

func (h *Handler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, FormDTO{
		Form:    forms.ArtistForm{SeekingVenue: forms.NewFlag(true), SeekingDescription: artists.DefaultSeekingDescription},
		Choices: forms.EntityChoices(),
	})
}

func (h *Handler) Create(c *gin.Context) {
	var form forms.ArtistForm
	if err := forms.Bind(c, &form); err != nil {
		respond.Fail(c, h.log, err, "An error occurred. Artist "+form.Name+" could not be listed.")
		return
	}

	a := form.Artist()
	if err := h.artists.Create(c.Request.Context(), a); err != nil {
		respond.Fail(c, h.log, err, "An error occurred. Artist "+a.Name+" could not be listed.")
		return
	}

	h.log.Info("artist listed", zap.Uint("artist_id", a.ID), zap.String("name", a.Name))
	c.JSON(http.StatusCreated, MessageDTO{Message: "Artist " + a.Name + " was successfully listed!", Artist: a})
}

func (h *Handler) EditForm(c *gin.Context) {
	id, ok := respond.ParamID(c, "id", "Artist")
	if !ok {
		return
	}

	a, err := h.artists.Get(c.Request.Context(), id)
	if err != nil {
		respond.Fail(c, h.log, err, "Artist not found")
		return
	}

	c.JSON(http.StatusOK, FormDTO{ID: a.ID, Form: forms.ArtistFormFrom(*a), Choices: forms.EntityChoices()})
}

func (h *Handler) Edit(c *gin.Context) {
	id, ok := respond.ParamID(c, "id", "Artist")
	if !ok {
		return
	}

	var form forms.ArtistForm
	if err := forms.Bind(c, &form); err != nil {
		respond.Fail(c, h.log, err, "An error occurred. Artist "+form.Name+" could not be modified.")
		return
	}

	a, err := h.artists.Update(c.Request.Context(), id, form.Artist())
	if err != nil {
		respond.Fail(c, h.log, err, "An error occurred. Artist "+form.Name+" could not be modified.")
		return
	}

	h.log.Info("artist edited", zap.Uint("artist_id", a.ID))
	c.JSON(http.StatusOK, MessageDTO{Message: "Artist " + a.Name + " was successfully edited!", Artist: a})
}
