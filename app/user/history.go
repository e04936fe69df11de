package user

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/query"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
)

var historySortFields = map[string]string{
	"watchedAt": "watch_entries.watched_at",
}

// UserWatchHistory lists the caller's watched videos, most recent first, each
// with the owner profile joined in.
func UserWatchHistory(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	params, err := query.ParseParams(c.Request.URL.Query(), historySortFields, "watchedAt")
	if err != nil {
		respond.Error(c, err)
		return
	}

	pipe := query.Pipeline{
		query.Join("JOIN watch_entries ON watch_entries.video_id = videos.id"),
		query.Filter("watch_entries.user_id = ?", userID),
		query.OwnerJoin("videos"),
		query.Sort(params.SortCol, params.SortDir, "videos.id"),
		query.Paginate(params.Page, params.Limit),
	}

	history := []query.VideoView{}
	if err := pipe.List(d.DB.Model(&model.Video{}), &history); err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, history, "Watch history")
}
