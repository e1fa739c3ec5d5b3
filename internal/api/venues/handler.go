package venues

import (
	"net/http"
	"time"

	"booking-app/internal/api/forms"
	"booking-app/internal/api/respond"
	"booking-app/internal/domain/shows"
	"booking-app/internal/domain/venues"
	"booking-app/internal/repo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	venues repo.VenueRepo
	shows  repo.ShowRepo
	log    *zap.Logger
	now    func() time.Time
}

func NewHandler(v repo.VenueRepo, s repo.ShowRepo, log *zap.Logger) *Handler {
	return &Handler{venues: v, shows: s, log: log.Named("venues"), now: time.Now}
}

// List groups every venue by city and state.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := h.venues.List(ctx)
	if err != nil {
		respond.Fail(c, h.log, err, "Failed to load venues")
		return
	}
	counts, err := h.shows.UpcomingCounts(ctx, shows.RoleVenue, nil, h.now())
	if err != nil {
		respond.Fail(c, h.log, err, "Failed to load venues")
		return
	}

	c.JSON(http.StatusOK, AreasDTO{Areas: venues.GroupByLocation(list, counts)})
}

func (h *Handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	form, err := forms.BindSearch(c)
	if err != nil {
		respond.Fail(c, h.log, err, "An error occurred while searching, please try again")
		return
	}

	found, err := h.venues.Search(ctx, form.Term())
	if err != nil {
		respond.Fail(c, h.log, err, "An error occurred while searching, please try again")
		return
	}
	counts, err := h.shows.UpcomingCounts(ctx, shows.RoleVenue, ids(found), h.now())
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

// Get renders one venue with its past and upcoming shows.
func (h *Handler) Get(c *gin.Context) {
	id, ok := respond.ParamID(c, "id", "Venue")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	v, err := h.venues.Get(ctx, id)
	if err != nil {
		respond.Fail(c, h.log, err, "Venue not found")
		return
	}
	booked, err := h.shows.ShowsFor(ctx, id, shows.RoleVenue)
	if err != nil {
		respond.Fail(c, h.log, err, "Failed to load venue shows")
		return
	}

	c.JSON(http.StatusOK, toDetail(*v, shows.NewTimeline(booked, h.now())))
}

func (h *Handler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, FormDTO{
		Form:    forms.VenueForm{SeekingTalent: forms.NewFlag(true), SeekingDescription: venues.DefaultSeekingDescription},
		Choices: forms.EntityChoices(),
	})
}

func (h *Handler) Create(c *gin.Context) {
	var form forms.VenueForm
	if err := forms.Bind(c, &form); err != nil {
		respond.Fail(c, h.log, err, "An error occurred. Venue "+form.Name+" could not be listed.")
		return
	}

	v := form.Venue()
	if err := h.venues.Create(c.Request.Context(), v); err != nil {
		respond.Fail(c, h.log, err, "An error occurred. Venue "+v.Name+" could not be listed.")
		return
	}

	h.log.Info("venue listed", zap.Uint("venue_id", v.ID), zap.String("name", v.Name))
	c.JSON(http.StatusCreated, MessageDTO{Message: "Venue " + v.Name + " was successfully listed!", Venue: v})
}

func (h *Handler) EditForm(c *gin.Context) {
	id, ok := respond.ParamID(c, "id", "Venue")
	if !ok {
		return
	}

	v, err := h.venues.Get(c.Request.Context(), id)
	if err != nil {
		respond.Fail(c, h.log, err, "Venue not found")
		return
	}

	c.JSON(http.StatusOK, FormDTO{ID: v.ID, Form: forms.VenueFormFrom(*v), Choices: forms.EntityChoices()})
}

// Edit overwrites every editable field of the venue with the submitted form.
func (h *Handler) Edit(c *gin.Context) {
	id, ok := respond.ParamID(c, "id", "Venue")
	if !ok {
		return
	}

	var form forms.VenueForm
	if err := forms.Bind(c, &form); err != nil {
		respond.Fail(c, h.log, err, "An error occurred. Venue "+form.Name+" could not be modified.")
		return
	}

	v, err := h.venues.Update(c.Request.Context(), id, form.Venue())
	if err != nil {
		respond.Fail(c, h.log, err, "An error occurred. Venue "+form.Name+" could not be modified.")
		return
	}

	h.log.Info("venue edited", zap.Uint("venue_id", v.ID))
	c.JSON(http.StatusOK, MessageDTO{Message: "Venue " + v.Name + " was successfully edited!", Venue: v})
}

// Delete removes the venue together with its shows.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := respond.ParamID(c, "id", "Venue")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	v, err := h.venues.Get(ctx, id)
	if err != nil {
		respond.Fail(c, h.log, err, "Venue not found")
		return
	}
	if err := h.venues.Delete(ctx, id); err != nil {
		respond.Fail(c, h.log, err, "An error occurred. Venue "+v.Name+" could not be deleted.")
		return
	}

	h.log.Info("venue deleted", zap.Uint("venue_id", id))
	c.JSON(http.StatusOK, MessageDTO{Message: "Venue " + v.Name + " was successfully deleted."})
}
