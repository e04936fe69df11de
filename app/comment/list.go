// Package comment contains the video comment endpoints
package comment

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

// CommentList pages through a video's comments, newest first. A missing
// video is a 404; a video without comments is an empty 200.
func CommentList(c *gin.Context, d *internal.Deps) {
	videoID := c.Param("videoId")
	if err := validators.IDValidator(videoID); err != nil {
		respond.Error(c, apperr.New(apperr.InvalidIdentifier, "Invalid video id"))
		return
	}

	params, err := query.ParseParams(c.Request.URL.Query(), query.CommentSortFields, "createdAt")
	if err != nil {
		respond.Error(c, err)
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

	pipe := query.Pipeline{
		query.Filter("comments.video_id = ?", videoID),
		query.Search("comments.content", params.Search),
		query.OwnerJoin("comments"),
		query.Sort(params.SortCol, params.SortDir, "comments.id"),
		query.Paginate(params.Page, params.Limit),
	}

	comments := []query.CommentView{}
	if err := pipe.List(d.DB.Model(&model.Comment{}), &comments); err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, comments, "Comments")
}
