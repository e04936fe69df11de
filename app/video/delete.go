package video

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/service"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// VideoDelete removes an owned video and everything hanging off it: comments
// and their likes, video likes, playlist entries and watch history. The row
// cleanup is transactional; the object store cleanup happens after commit.
func VideoDelete(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	video, err := loadOwned(d, c.Param("videoId"), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	err = d.DB.Transaction(func(tx *gorm.DB) error {
		commentIDs := tx.Model(&model.Comment{}).
			Select("id").
			Where("video_id = ?", video.ID)

		if err := tx.Where("target_kind = ? AND target_id IN (?)", model.TargetComment, commentIDs).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}

		if err := tx.Where("target_kind = ? AND target_id = ?", model.TargetVideo, video.ID).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}

		if err := tx.Where("video_id = ?", video.ID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("video_id = ?", video.ID).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}

		if err := tx.Where("video_id = ?", video.ID).Delete(&model.WatchEntry{}).Error; err != nil {
			return err
		}

		return tx.Delete(video).Error
	})
	if err != nil {
		respond.Error(c, err)
		return
	}

	err = d.Storage.Delete(c.Request.Context(),
		service.ObjectKey(video.VideoFile),
		service.ObjectKey(video.Thumbnail),
	)
	if err != nil {
		// The record is gone either way, just leave a trace of the orphans
		zap.L().Error("Failed to delete video objects from storage",
			zap.String("videoID", video.ID),
			zap.Error(err),
		)
	}

	respond.JSON(c, http.StatusOK, video, "Video deleted")
}
