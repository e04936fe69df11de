package user

import (
	"net/http"
	"strings"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type loginBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func UserLogin(c *gin.Context, d *internal.Deps) {
	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		respond.Error(c, apperr.Wrap(apperr.ValidationFailed, "Invalid request body", err))
		return
	}

	if data.Username == "" && data.Email == "" {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "username or email is required"))
		return
	}

	if data.Password == "" {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "password can't be blank"))
		return
	}

	var user model.User
	err := d.DB.
		Where("username = ? OR email = ?", strings.ToLower(data.Username), data.Email).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.Error(c, apperr.New(apperr.NotFound, "User not found"))
			return
		}

		respond.Error(c, err)
		return
	}

	ok, err := d.Argon.VerifyPasswd(data.Password, user.PasswordHash)
	if err != nil {
		respond.Error(c, err)
		return
	}

	if !ok {
		respond.Error(c, apperr.New(apperr.Forbidden, "Invalid credentials"))
		return
	}

	access, err := d.Tokens.MintAccess(user.ID)
	if err != nil {
		respond.Error(c, apperr.Wrap(apperr.UpstreamFailure, "Failed to issue tokens", err))
		return
	}

	refresh, err := d.Tokens.MintRefresh(user.ID)
	if err != nil {
		respond.Error(c, apperr.Wrap(apperr.UpstreamFailure, "Failed to issue tokens", err))
		return
	}

	if err := d.DB.Model(&user).Update("refresh_token", refresh).Error; err != nil {
		respond.Error(c, err)
		return
	}

	setAuthCookies(c, d, access, refresh)
	respond.JSON(c, http.StatusOK, gin.H{
		"user":         user,
		"accessToken":  access,
		"refreshToken": refresh,
	}, "Logged in")
}
