package playlist

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func PlaylistDelete(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	playlist, err := loadOwned(d, c.Param("playlistId"), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	err = d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlist.ID).
			Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}

		return tx.Delete(playlist).Error
	})
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, playlist, "Playlist deleted")
}
