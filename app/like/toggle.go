// Package like contains the like toggle and liked-content endpoints
package like

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"
	"bitwise74/streamhub-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func LikeToggleVideo(c *gin.Context, d *internal.Deps) {
	toggle(c, d, model.TargetVideo, c.Param("videoId"))
}

func LikeToggleComment(c *gin.Context, d *internal.Deps) {
	toggle(c, d, model.TargetComment, c.Param("commentId"))
}

func LikeToggleTweet(c *gin.Context, d *internal.Deps) {
	toggle(c, d, model.TargetTweet, c.Param("tweetId"))
}

// toggle flips the existence of a like row. The unique (liked_by, kind,
// target) index means a concurrent double-toggle can't produce two rows; a
// duplicate-key create just means someone else got there first.
func toggle(c *gin.Context, d *internal.Deps, kind, targetID string) {
	userID := c.MustGet("userID").(string)

	if err := validators.IDValidator(targetID); err != nil {
		respond.Error(c, apperr.New(apperr.InvalidIdentifier, "Invalid "+kind+" id"))
		return
	}

	exists, err := targetExists(d.DB, kind, targetID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	if !exists {
		respond.Error(c, apperr.New(apperr.NotFound, "Target "+kind+" not found"))
		return
	}

	res := d.DB.
		Where("liked_by_id = ? AND target_kind = ? AND target_id = ?", userID, kind, targetID).
		Delete(&model.Like{})
	if res.Error != nil {
		respond.Error(c, res.Error)
		return
	}

	if res.RowsAffected > 0 {
		respond.JSON(c, http.StatusOK, gin.H{"liked": false}, "Unliked")
		return
	}

	likeID, err := model.NewID()
	if err != nil {
		respond.Error(c, err)
		return
	}

	err = d.DB.Create(&model.Like{
		ID:         likeID,
		LikedByID:  userID,
		TargetKind: kind,
		TargetID:   targetID,
	}).Error
	if err != nil && !model.IsDuplicate(err) {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"liked": true}, "Liked")
}

func targetExists(db *gorm.DB, kind, targetID string) (bool, error) {
	var n int64
	var err error

	switch kind {
	case model.TargetVideo:
		err = db.Model(&model.Video{}).Where("id = ?", targetID).Count(&n).Error
	case model.TargetComment:
		err = db.Model(&model.Comment{}).Where("id = ?", targetID).Count(&n).Error
	case model.TargetTweet:
		err = db.Model(&model.Tweet{}).Where("id = ?", targetID).Count(&n).Error
	default:
		return false, apperr.New(apperr.ValidationFailed, "Unknown like target")
	}

	return n > 0, err
}
