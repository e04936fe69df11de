package like

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/query"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
)

var likedSortFields = map[string]string{
	"likedAt": "likes.created_at",
}

// LikedVideos lists the videos the caller has liked, most recently liked
// first, with owners joined in.
func LikedVideos(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	params, err := query.ParseParams(c.Request.URL.Query(), likedSortFields, "likedAt")
	if err != nil {
		respond.Error(c, err)
		return
	}

	pipe := query.Pipeline{
		query.Join("JOIN likes ON likes.target_id = videos.id AND likes.target_kind = ?", model.TargetVideo),
		query.Filter("likes.liked_by_id = ?", userID),
		query.OwnerJoin("videos"),
		query.Sort(params.SortCol, params.SortDir, "videos.id"),
		query.Paginate(params.Page, params.Limit),
	}

	videos := []query.VideoView{}
	if err := pipe.List(d.DB.Model(&model.Video{}), &videos); err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, videos, "Liked videos")
}
