package video

import (
	"net/http"
	"path"
	"strings"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/service"
	"bitwise74/streamhub-api/pkg/respond"
	"bitwise74/streamhub-api/pkg/util"

	"github.com/gin-gonic/gin"
)

// VideoEdit updates title, description and optionally the thumbnail of an
// owned video. Fields left out of the form stay unchanged.
func VideoEdit(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	video, err := loadOwned(d, c.Param("videoId"), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	updates := map[string]any{}

	if title := strings.TrimSpace(c.PostForm("title")); title != "" {
		updates["title"] = title
	}

	if description := strings.TrimSpace(c.PostForm("description")); description != "" {
		updates["description"] = description
	}

	oldThumb := ""
	if fh, err := c.FormFile("thumbnail"); err == nil && fh != nil {
		tmp, cleanup, err := service.SaveTemp(fh, "thumb-*")
		if err != nil {
			respond.Error(c, err)
			return
		}
		defer cleanup()

		key := video.ID + "_thumb_" + util.RandStr(6) + path.Ext(fh.Filename)
		url, err := d.Storage.Upload(c.Request.Context(), key, tmp, fh.Header.Get("Content-Type"))
		if err != nil {
			respond.Error(c, apperr.Wrap(apperr.UpstreamFailure, "Failed to store thumbnail", err))
			return
		}

		oldThumb = video.Thumbnail
		updates["thumbnail"] = url
	}

	if len(updates) == 0 {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "Nothing to update"))
		return
	}

	if err := d.DB.Model(video).Updates(updates).Error; err != nil {
		respond.Error(c, err)
		return
	}

	if oldThumb != "" {
		d.Storage.Delete(c.Request.Context(), service.ObjectKey(oldThumb))
	}

	respond.JSON(c, http.StatusOK, video, "Video updated")
}
