package video

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

// VideoList is the public catalog listing: optional title search, optional
// owner scoping, whitelisted sorting and pagination. Owners see their own
// unpublished videos, everyone else only published ones.
func VideoList(c *gin.Context, d *internal.Deps) {
	params, err := query.ParseParams(c.Request.URL.Query(), query.VideoSortFields, "createdAt")
	if err != nil {
		respond.Error(c, err)
		return
	}

	pipe := query.Pipeline{}

	scopeID := c.Query("userId")
	if scopeID != "" {
		if err := validators.IDValidator(scopeID); err != nil {
			respond.Error(c, apperr.New(apperr.InvalidIdentifier, "Invalid userId"))
			return
		}
		pipe = append(pipe, query.Filter("videos.owner_id = ?", scopeID))
	}

	if scopeID == "" || scopeID != c.GetString("userID") {
		pipe = append(pipe, query.Filter("videos.is_published = ?", true))
	}

	pipe = append(pipe,
		query.Search("videos.title", params.Search),
		query.OwnerJoin("videos"),
		query.Sort(params.SortCol, params.SortDir, "videos.id"),
		query.Paginate(params.Page, params.Limit),
	)

	videos := []query.VideoView{}
	if err := pipe.List(d.DB.Model(&model.Video{}), &videos); err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, videos, "Videos")
}
