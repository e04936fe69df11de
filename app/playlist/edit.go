package playlist

import (
	"net/http"
	"strings"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
)

func PlaylistEdit(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	playlist, err := loadOwned(d, c.Param("playlistId"), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	var data playlistBody
	if err := c.ShouldBind(&data); err != nil {
		respond.Error(c, apperr.Wrap(apperr.ValidationFailed, "Invalid request body", err))
		return
	}

	updates := map[string]any{}

	if name := strings.TrimSpace(data.Name); name != "" {
		updates["name"] = name
	}

	if description := strings.TrimSpace(data.Description); description != "" {
		updates["description"] = description
	}

	if len(updates) == 0 {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "Nothing to update"))
		return
	}

	if err := d.DB.Model(playlist).Updates(updates).Error; err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, playlist, "Playlist updated")
}
