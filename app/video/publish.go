// Package video contains the video publishing and catalog endpoints
package video

import (
	"net/http"
	"path"
	"strings"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/service"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VideoPublish uploads the media pair and creates the record. Duration is
// measured from the uploaded file, never taken from the request. Any failed
// step aborts the whole operation and removes whatever was already uploaded.
func VideoPublish(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))

	if title == "" {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "title can't be blank"))
		return
	}

	if description == "" {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "description can't be blank"))
		return
	}

	videoFH, err := c.FormFile("videoFile")
	if err != nil || videoFH == nil {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "videoFile is required"))
		return
	}

	thumbFH, err := c.FormFile("thumbnail")
	if err != nil || thumbFH == nil {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "thumbnail is required"))
		return
	}

	videoPath, videoCleanup, err := service.SaveTemp(videoFH, "upload-*.mp4")
	if err != nil {
		respond.Error(c, err)
		return
	}
	defer videoCleanup()

	thumbPath, thumbCleanup, err := service.SaveTemp(thumbFH, "thumb-*")
	if err != nil {
		respond.Error(c, err)
		return
	}
	defer thumbCleanup()

	duration, err := d.Prober.Duration(videoPath)
	if err != nil {
		respond.Error(c, apperr.Wrap(apperr.UpstreamFailure, "Failed to inspect video file", err))
		return
	}

	videoID, err := model.NewID()
	if err != nil {
		respond.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	videoKey := videoID + path.Ext(videoFH.Filename)
	thumbKey := videoID + "_thumb" + path.Ext(thumbFH.Filename)

	videoURL, err := d.Storage.Upload(ctx, videoKey, videoPath, "video/mp4")
	if err != nil {
		respond.Error(c, apperr.Wrap(apperr.UpstreamFailure, "Failed to store video file", err))
		return
	}

	thumbURL, err := d.Storage.Upload(ctx, thumbKey, thumbPath, thumbFH.Header.Get("Content-Type"))
	if err != nil {
		d.Storage.Delete(ctx, videoKey)
		respond.Error(c, apperr.Wrap(apperr.UpstreamFailure, "Failed to store thumbnail", err))
		return
	}

	video := model.Video{
		ID:          videoID,
		OwnerID:     userID,
		VideoFile:   videoURL,
		Thumbnail:   thumbURL,
		Title:       title,
		Description: description,
		Duration:    duration,
		IsPublished: true,
	}

	if err := d.DB.Create(&video).Error; err != nil {
		d.Storage.Delete(ctx, videoKey, thumbKey)
		respond.Error(c, err)
		return
	}

	zap.L().Info("Video published",
		zap.String("videoID", videoID),
		zap.String("userID", userID),
		zap.Float64("duration", duration),
	)

	respond.JSON(c, http.StatusCreated, video, "Video published")
}
