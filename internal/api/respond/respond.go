package respond

import (
	"errors"
	"net/http"

	"booking-app/internal/api/forms"
	"booking-app/internal/repo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Fail writes the failure outcome for err. message is the user-facing text,
// e.g. "An error occurred. Venue X could not be listed.". Store failures are
// logged and their details withheld.
func Fail(c *gin.Context, log *zap.Logger, err error, message string) {
	var verr *forms.ValidationError
	var serr *repo.StoreError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": message, "details": verr.Fields})
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": message, "details": err.Error()})
	case errors.Is(err, repo.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": message, "details": err.Error()})
	default:
		if errors.As(err, &serr) {
			log.Error("store failure", zap.String("op", serr.Op), zap.Error(serr.Err))
		} else {
			log.Error("request failed", zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "details": c.Request.URL.Path})
}

// Recovery turns a panic into the 500 page and logs it.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
}
