package playlist

import (
	"net/http"
	"time"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"
	"bitwise74/streamhub-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlaylistAddVideo appends a video to an owned playlist. Adding a video
// that's already in the list is a no-op, not an error.
func PlaylistAddVideo(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	playlist, err := loadOwned(d, c.Param("playlistId"), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	videoID := c.Param("videoId")
	if err := validators.IDValidator(videoID); err != nil {
		respond.Error(c, apperr.New(apperr.InvalidIdentifier, "Invalid video id"))
		return
	}

	var video model.Video
	if err := d.DB.Select("id").Where("id = ?", videoID).First(&video).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.Error(c, apperr.New(apperr.NotFound, "Video not found"))
			return
		}

		respond.Error(c, err)
		return
	}

	// Position is computed inside the INSERT itself, so two concurrent adds
	// can't both read the same max
	err = d.DB.Model(&model.PlaylistVideo{}).Create(map[string]any{
		"playlist_id": playlist.ID,
		"video_id":    videoID,
		"position": gorm.Expr(
			"(SELECT COALESCE(MAX(position), 0) + 1 FROM playlist_videos WHERE playlist_id = ?)",
			playlist.ID,
		),
		"created_at": time.Now(),
	}).Error
	if err != nil && !model.IsDuplicate(err) {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, playlist, "Video added to playlist")
}

// PlaylistRemoveVideo drops a video from an owned playlist. Removing a video
// that isn't in the list succeeds quietly.
func PlaylistRemoveVideo(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	playlist, err := loadOwned(d, c.Param("playlistId"), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	videoID := c.Param("videoId")
	if err := validators.IDValidator(videoID); err != nil {
		respond.Error(c, apperr.New(apperr.InvalidIdentifier, "Invalid video id"))
		return
	}

	err = d.DB.
		Where("playlist_id = ? AND video_id = ?", playlist.ID, videoID).
		Delete(&model.PlaylistVideo{}).Error
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, playlist, "Video removed from playlist")
}
