// Package dashboard contains the channel owner's statistics endpoints
package dashboard

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/query"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
)

func DashboardStats(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	stats, err := query.Channel(d.DB, userID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, stats, "Channel stats")
}
