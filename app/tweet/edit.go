package tweet

import (
	"net/http"
	"strings"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"
	"bitwise74/streamhub-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TweetEdit(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	tweet, err := loadOwned(d, c.Param("tweetId"), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	var data tweetBody
	if err := c.ShouldBind(&data); err != nil {
		respond.Error(c, apperr.Wrap(apperr.ValidationFailed, "Invalid request body", err))
		return
	}

	data.Content = strings.TrimSpace(data.Content)
	if data.Content == "" {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "content can't be blank"))
		return
	}

	if err := d.DB.Model(tweet).Update("content", data.Content).Error; err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, tweet, "Tweet updated")
}

func loadOwned(d *internal.Deps, tweetID, userID string) (*model.Tweet, error) {
	if err := validators.IDValidator(tweetID); err != nil {
		return nil, apperr.New(apperr.InvalidIdentifier, "Invalid tweet id")
	}

	var tweet model.Tweet
	if err := d.DB.Where("id = ?", tweetID).First(&tweet).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.New(apperr.NotFound, "Tweet not found")
		}

		return nil, err
	}

	if tweet.OwnerID != userID {
		return nil, apperr.New(apperr.Forbidden, "You don't own this tweet")
	}

	return &tweet, nil
}
