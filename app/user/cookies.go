// Package user contains the account and channel endpoints
package user

import (
	"bitwise74/streamhub-api/internal"

	"github.com/gin-gonic/gin"
)

func setAuthCookies(c *gin.Context, d *internal.Deps, access, refresh string) {
	c.SetCookie("access_token", access, int(d.Tokens.AccessTTL.Seconds()), "/", "", false, true)
	c.SetCookie("refresh_token", refresh, int(d.Tokens.RefreshTTL.Seconds()), "/", "", false, true)
}

func clearAuthCookies(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
}
