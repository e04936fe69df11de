package comment

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CommentDelete(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	comment, err := loadOwned(d, c.Param("commentId"), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}

	err = d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", model.TargetComment, comment.ID).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}

		return tx.Delete(comment).Error
	})
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, comment, "Comment deleted")
}
