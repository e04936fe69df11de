package playlist

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/query"
	"bitwise74/streamhub-api/pkg/respond"
	"bitwise74/streamhub-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlaylistFetch returns a playlist and its videos in list order.
func PlaylistFetch(c *gin.Context, d *internal.Deps) {
	playlistID := c.Param("playlistId")
	if err := validators.IDValidator(playlistID); err != nil {
		respond.Error(c, apperr.New(apperr.InvalidIdentifier, "Invalid playlist id"))
		return
	}

	var playlist model.Playlist
	if err := d.DB.Where("id = ?", playlistID).First(&playlist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.Error(c, apperr.New(apperr.NotFound, "Playlist not found"))
			return
		}

		respond.Error(c, err)
		return
	}

	pipe := query.Pipeline{
		query.Join("JOIN playlist_videos ON playlist_videos.video_id = videos.id"),
		query.Filter("playlist_videos.playlist_id = ?", playlistID),
		query.OwnerJoin("videos"),
		query.Sort("playlist_videos.position", "asc"),
	}

	videos := []query.VideoView{}
	if err := pipe.List(d.DB.Model(&model.Video{}), &videos); err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"playlist": playlist,
		"videos":   videos,
	}, "Playlist")
}
