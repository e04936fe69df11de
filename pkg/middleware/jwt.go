package middleware

import (
	"net/http"
	"strings"

	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"
	"bitwise74/streamhub-api/pkg/security"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func bearerToken(c *gin.Context) string {
	if cookie, err := c.Cookie("access_token"); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}

	return ""
}

// NewJWTMiddleware authenticates the request and sets userID in the context.
// The user row is loaded too, so a deleted account with a still-valid token
// gets rejected.
func NewJWTMiddleware(db *gorm.DB, tokens *security.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, respond.Envelope{
				StatusCode: http.StatusUnauthorized,
				Data:       gin.H{},
				Message:    "Missing access token",
				Success:    false,
			})
			return
		}

		userID, err := tokens.ParseAccess(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, respond.Envelope{
				StatusCode: http.StatusUnauthorized,
				Data:       gin.H{},
				Message:    "Invalid or expired access token",
				Success:    false,
			})
			return
		}

		var user model.User
		if err := db.Select("id").Where("id = ?", userID).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				respond.AbortError(c, apperr.New(apperr.NotFound, "User no longer exists"))
				return
			}

			respond.AbortError(c, err)
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// NewOptionalJWTMiddleware sets userID when a valid token is present and
// stays silent otherwise. Used on public reads that personalize their
// response for logged-in callers.
func NewOptionalJWTMiddleware(tokens *security.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := bearerToken(c); tokenStr != "" {
			if userID, err := tokens.ParseAccess(tokenStr); err == nil {
				c.Set("userID", userID)
			}
		}

		c.Next()
	}
}
