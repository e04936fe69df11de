package tweet

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

// TweetList pages through one user's tweets, newest first.
func TweetList(c *gin.Context, d *internal.Deps) {
	ownerID := c.Param("userId")
	if err := validators.IDValidator(ownerID); err != nil {
		respond.Error(c, apperr.New(apperr.InvalidIdentifier, "Invalid user id"))
		return
	}

	params, err := query.ParseParams(c.Request.URL.Query(), query.TweetSortFields, "createdAt")
	if err != nil {
		respond.Error(c, err)
		return
	}

	var user model.User
	if err := d.DB.Select("id").Where("id = ?", ownerID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.Error(c, apperr.New(apperr.NotFound, "User not found"))
			return
		}

		respond.Error(c, err)
		return
	}

	pipe := query.Pipeline{
		query.Filter("tweets.owner_id = ?", ownerID),
		query.Search("tweets.content", params.Search),
		query.OwnerJoin("tweets"),
		query.Sort(params.SortCol, params.SortDir, "tweets.id"),
		query.Paginate(params.Page, params.Limit),
	}

	tweets := []query.TweetView{}
	if err := pipe.List(d.DB.Model(&model.Tweet{}), &tweets); err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, tweets, "Tweets")
}
