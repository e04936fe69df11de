package user

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
)

func UserLogout(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	err := d.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("refresh_token", "").Error
	if err != nil {
		respond.Error(c, err)
		return
	}

	clearAuthCookies(c)
	respond.JSON(c, http.StatusOK, nil, "Logged out")
}
