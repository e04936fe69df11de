package tweet

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TweetDelete(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	tweet, err := loadOwned(d, c.Param("tweetId"), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	err = d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", model.TargetTweet, tweet.ID).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}

		return tx.Delete(tweet).Error
	})
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, tweet, "Tweet deleted")
}
