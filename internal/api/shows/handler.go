package shows

import (
	"net/http"
	"time"

	"booking-app/internal/api/forms"
	"booking-app/internal/api/respond"
	"booking-app/internal/repo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	shows repo.ShowRepo
	log   *zap.Logger
	now   func() time.Time
}

func NewHandler(s repo.ShowRepo, log *zap.Logger) *Handler {
	return &Handler{shows: s, log: log.Named("shows"), now: time.Now}
}

// List returns every show ordered by id, with the artist image resolved at
// read time.
func (h *Handler) List(c *gin.Context) {
	list, err := h.shows.List(c.Request.Context())
	if err != nil {
		respond.Fail(c, h.log, err, "Failed to load shows")
		return
	}

	now := h.now()
	out := make([]ShowDTO, 0, len(list))
	for _, s := range list {
		out = append(out, toShowDTO(s, now))
	}
	c.JSON(http.StatusOK, ListDTO{Shows: out})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := respond.ParamID(c, "id", "Show")
	if !ok {
		return
	}

	s, err := h.shows.Get(c.Request.Context(), id)
	if err != nil {
		respond.Fail(c, h.log, err, "Show not found")
		return
	}
	c.JSON(http.StatusOK, toShowDTO(*s, h.now()))
}

func (h *Handler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, FormDTO{
		Form:    forms.ShowForm{StartTime: h.now().UTC().Format(forms.StartTimeLayouts[0])},
		Layouts: forms.StartTimeLayouts,
	})
}

func (h *Handler) Create(c *gin.Context) {
	var form forms.ShowForm
	if err := forms.Bind(c, &form); err != nil {
		respond.Fail(c, h.log, err, "An error occurred. Show could not be listed.")
		return
	}
	s, err := form.Show()
	if err != nil {
		respond.Fail(c, h.log, err, "An error occurred. Show could not be listed.")
		return
	}

	if err := h.shows.Create(c.Request.Context(), s); err != nil {
		respond.Fail(c, h.log, err, "An error occurred. Show could not be listed.")
		return
	}

	h.log.Info("show listed",
		zap.Uint("show_id", s.ID),
		zap.Uint("venue_id", s.VenueID),
		zap.Uint("artist_id", s.ArtistID),
	)
	if full, err := h.shows.Get(c.Request.Context(), s.ID); err == nil {
		s = full
	}
	dto := toShowDTO(*s, h.now())
	c.JSON(http.StatusCreated, MessageDTO{Message: "Show was successfully listed!", Show: &dto})
}
