// Package tweet contains the channel post endpoints
package tweet

import (
	"net/http"
	"strings"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
)

type tweetBody struct {
	Content string `json:"content"`
}

func TweetCreate(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

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

	tweetID, err := model.NewID()
	if err != nil {
		respond.Error(c, err)
		return
	}

	tweet := model.Tweet{
		ID:      tweetID,
		OwnerID: userID,
		Content: data.Content,
	}

	if err := d.DB.Create(&tweet).Error; err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusCreated, tweet, "Tweet created")
}
