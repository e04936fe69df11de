package dashboard

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/query"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
)

type dashboardVideo struct {
	model.Video
	LikeCount int64 `json:"likeCount"`
}

// DashboardVideos lists the caller's own videos, published or not, each with
// its like count.
func DashboardVideos(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	params, err := query.ParseParams(c.Request.URL.Query(), query.VideoSortFields, "createdAt")
	if err != nil {
		respond.Error(c, err)
		return
	}

	pipe := query.Pipeline{
		query.Filter("videos.owner_id = ?", userID),
		query.Search("videos.title", params.Search),
		query.Join("LEFT JOIN likes ON likes.target_id = videos.id AND likes.target_kind = ?", model.TargetVideo),
		query.Project("videos.*, COUNT(likes.id) AS like_count"),
		query.Group("videos.id"),
		query.Sort(params.SortCol, params.SortDir, "videos.id"),
		query.Paginate(params.Page, params.Limit),
	}

	videos := []dashboardVideo{}
	if err := pipe.List(d.DB.Model(&model.Video{}), &videos); err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, videos, "Channel videos")
}
