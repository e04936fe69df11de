package user

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"
	"bitwise74/streamhub-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

type changePasswordBody struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UserChangePassword verifies the old password and stores a fresh hash of the
// new one. The verification read has no side effects; only the explicit
// update below writes anything.
func UserChangePassword(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	var data changePasswordBody
	if err := c.ShouldBind(&data); err != nil {
		respond.Error(c, apperr.Wrap(apperr.ValidationFailed, "Invalid request body", err))
		return
	}

	if data.OldPassword == "" {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "oldPassword can't be blank"))
		return
	}

	if err := validators.PasswordValidator(data.NewPassword); err != nil {
		respond.Error(c, apperr.New(apperr.ValidationFailed, err.Error()))
		return
	}

	var user model.User
	if err := d.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		respond.Error(c, err)
		return
	}

	ok, err := d.Argon.VerifyPasswd(data.OldPassword, user.PasswordHash)
	if err != nil {
		respond.Error(c, err)
		return
	}

	if !ok {
		respond.Error(c, apperr.New(apperr.Forbidden, "Old password is incorrect"))
		return
	}

	hash, err := d.Argon.GenerateFromPassword(data.NewPassword)
	if err != nil {
		respond.Error(c, err)
		return
	}

	if err := d.DB.Model(&user).Update("password_hash", hash).Error; err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, nil, "Password changed")
}
