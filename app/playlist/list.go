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
)

type playlistView struct {
	model.Playlist
	VideoCount int64 `json:"videoCount"`
}

// PlaylistListByUser returns a user's playlists with their video counts.
func PlaylistListByUser(c *gin.Context, d *internal.Deps) {
	ownerID := c.Param("userId")
	if err := validators.IDValidator(ownerID); err != nil {
		respond.Error(c, apperr.New(apperr.InvalidIdentifier, "Invalid user id"))
		return
	}

	params, err := query.ParseParams(c.Request.URL.Query(), query.PlaylistSortFields, "createdAt")
	if err != nil {
		respond.Error(c, err)
		return
	}

	pipe := query.Pipeline{
		query.Filter("playlists.owner_id = ?", ownerID),
		query.Search("playlists.name", params.Search),
		query.Join("LEFT JOIN playlist_videos ON playlist_videos.playlist_id = playlists.id"),
		query.Project("playlists.*, COUNT(playlist_videos.video_id) AS video_count"),
		query.Group("playlists.id"),
		query.Sort(params.SortCol, params.SortDir, "playlists.id"),
		query.Paginate(params.Page, params.Limit),
	}

	playlists := []playlistView{}
	if err := pipe.List(d.DB.Model(&model.Playlist{}), &playlists); err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, playlists, "Playlists")
}
