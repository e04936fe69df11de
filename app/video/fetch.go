package video

import (
	"net/http"
	"time"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/query"
	"bitwise74/streamhub-api/pkg/respond"
	"bitwise74/streamhub-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VideoFetch returns a single video with its owner joined. Unpublished videos
// are only visible to their owner. A successful fetch counts as a view and,
// for logged-in callers, lands in the watch history.
func VideoFetch(c *gin.Context, d *internal.Deps) {
	videoID := c.Param("videoId")
	if err := validators.IDValidator(videoID); err != nil {
		respond.Error(c, apperr.New(apperr.InvalidIdentifier, "Invalid video id"))
		return
	}

	var view query.VideoView
	err := query.Pipeline{
		query.Filter("videos.id = ?", videoID),
		query.OwnerJoin("videos"),
	}.Apply(d.DB.Model(&model.Video{})).Take(&view).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.Error(c, apperr.New(apperr.NotFound, "Video not found"))
			return
		}

		respond.Error(c, err)
		return
	}

	callerID := c.GetString("userID")

	if !view.IsPublished && view.OwnerID != callerID {
		respond.Error(c, apperr.New(apperr.NotFound, "Video not found"))
		return
	}

	err = d.DB.Model(&model.Video{}).
		Where("id = ?", videoID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	if err != nil {
		respond.Error(c, err)
		return
	}
	view.Views++

	if callerID != "" {
		err = d.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.Assignments(map[string]any{"watched_at": time.Now()}),
		}).Create(&model.WatchEntry{
			UserID:    callerID,
			VideoID:   videoID,
			WatchedAt: time.Now(),
		}).Error
		if err != nil {
			// The fetch itself succeeded, don't fail it over history bookkeeping
			zap.L().Warn("Failed to record watch history",
				zap.String("userID", callerID),
				zap.String("videoID", videoID),
				zap.Error(err),
			)
		}
	}

	respond.JSON(c, http.StatusOK, view, "Video")
}
