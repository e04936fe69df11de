package user

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserRefreshToken rotates the token pair. The presented refresh token must
// both verify and match the one persisted at login, so a stolen-then-rotated
// token can't be replayed.
func UserRefreshToken(c *gin.Context, d *internal.Deps) {
	tokenStr, err := c.Cookie("refresh_token")
	if err != nil || tokenStr == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		c.ShouldBind(&body)
		tokenStr = body.RefreshToken
	}

	if tokenStr == "" {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "refresh token is required"))
		return
	}

	userID, err := d.Tokens.ParseRefresh(tokenStr)
	if err != nil {
		respond.Error(c, apperr.New(apperr.Forbidden, "Invalid or expired refresh token"))
		return
	}

	var user model.User
	if err := d.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.Error(c, apperr.New(apperr.NotFound, "User not found"))
			return
		}

		respond.Error(c, err)
		return
	}

	if user.RefreshToken != tokenStr {
		respond.Error(c, apperr.New(apperr.Forbidden, "Refresh token no longer valid"))
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
		"accessToken":  access,
		"refreshToken": refresh,
	}, "Tokens refreshed")
}
