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

func CommentEdit(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	comment, err := loadOwned(d, c.Param("commentId"), userID)
	if err != nil {
		respond.Error(c, err)
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

	if err := d.DB.Model(comment).Update("content", data.Content).Error; err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, comment, "Comment updated")
}

// loadOwned fetches a comment after the identifier and ownership checks.
func loadOwned(d *internal.Deps, commentID, userID string) (*model.Comment, error) {
	if err := validators.IDValidator(commentID); err != nil {
		return nil, apperr.New(apperr.InvalidIdentifier, "Invalid comment id")
	}

	var comment model.Comment
	if err := d.DB.Where("id = ?", commentID).First(&comment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.New(apperr.NotFound, "Comment not found")
		}

		return nil, err
	}

	if comment.OwnerID != userID {
		return nil, apperr.New(apperr.Forbidden, "You don't own this comment")
	}

	return &comment, nil
}
