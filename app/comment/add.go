package comment

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

type commentBody struct {
	Content string `json:"content"`
}

func CommentAdd(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	videoID := c.Param("videoId")
	if err := validators.IDValidator(videoID); err != nil {
		respond.Error(c, apperr.New(apperr.InvalidIdentifier, "Invalid video id"))
		return
	}

	var data commentBody
	if err := c.ShouldBind(&data); err != nil {
		respond.Error(c, apperr.Wrap(apperr.ValidationFailed, "Invalid request body", err))
		return
	}

	data.Content = strings.TrimSpace(data.Content)
	if data.Content == "" {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "content can't be blank"))
		return
	}

	var video model.Video
	if err := d.DB.Select("id").Where("id = ?", videoID).First(&video).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.Error(c, apperr.New(apperr.NotFound, "Video not found"))
			return
		}

		respond.Error(c, err)
		return
	}

	commentID, err := model.NewID()
	if err != nil {
		respond.Error(c, err)
		return
	}

	comment := model.Comment{
		ID:      commentID,
		OwnerID: userID,
		VideoID: videoID,
		Content: data.Content,
	}

	if err := d.DB.Create(&comment).Error; err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusCreated, comment, "Comment added")
}
