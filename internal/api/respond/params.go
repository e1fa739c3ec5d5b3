package respond

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamID reads a positive integer path parameter. On failure it writes a
// 404 naming what was asked for and returns false.
func ParamID(c *gin.Context, name, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found", "details": c.Param(name)})
		return 0, false
	}
	return uint(id), true
}
