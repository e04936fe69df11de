package user

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/service"
	"bitwise74/streamhub-api/pkg/respond"
	"bitwise74/streamhub-api/pkg/util"

	"github.com/gin-gonic/gin"
)

func UserUpdateAvatar(c *gin.Context, d *internal.Deps) {
	swapImage(c, d, "avatar")
}

func UserUpdateCoverImage(c *gin.Context, d *internal.Deps) {
	swapImage(c, d, "coverImage")
}

// swapImage uploads the replacement first and only then updates the row and
// removes the old object, so a failed upload leaves the account untouched.
func swapImage(c *gin.Context, d *internal.Deps, field string) {
	userID := c.MustGet("userID").(string)

	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		respond.Error(c, apperr.New(apperr.ValidationFailed, field+" image is required"))
		return
	}

	var user model.User
	if err := d.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		respond.Error(c, err)
		return
	}

	column := "avatar"
	old := user.Avatar
	if field == "coverImage" {
		column = "cover_image"
		old = user.CoverImage
	}

	url, _, err := uploadImage(c, d, fh, userID+"_"+column+"_"+util.RandStr(6))
	if err != nil {
		respond.Error(c, apperr.Wrap(apperr.UpstreamFailure, "Failed to store "+field+" image", err))
		return
	}

	if err := d.DB.Model(&user).Update(column, url).Error; err != nil {
		d.Storage.Delete(c.Request.Context(), service.ObjectKey(url))
		respond.Error(c, err)
		return
	}

	if old != "" {
		d.Storage.Delete(c.Request.Context(), service.ObjectKey(old))
	}

	if field == "coverImage" {
		user.CoverImage = url
	} else {
		user.Avatar = url
	}

	respond.JSON(c, http.StatusOK, user, "Image updated")
}
