package video

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
)

func VideoTogglePublish(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	video, err := loadOwned(d, c.Param("videoId"), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	video.IsPublished = !video.IsPublished

	if err := d.DB.Model(video).Update("is_published", video.IsPublished).Error; err != nil {
		respond.Error(c, err)
		return
	}

	msg := "Video unpublished"
	if video.IsPublished {
		msg = "Video published"
	}

	respond.JSON(c, http.StatusOK, video, msg)
}
