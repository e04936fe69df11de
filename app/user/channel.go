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

type channelProfile struct {
	model.Profile
	CoverImage        string `json:"coverImage,omitempty"`
	SubscriberCount   int64  `json:"subscriberCount"`
	SubscribedToCount int64  `json:"subscribedToCount"`
	IsSubscribed      bool   `json:"isSubscribed"`
}

// UserChannelProfile resolves a channel by username. isSubscribed reflects
// the caller when they're logged in, false otherwise.
func UserChannelProfile(c *gin.Context, d *internal.Deps) {
	username := strings.ToLower(c.Param("username"))
	if username == "" {
		respond.Error(c, apperr.New(apperr.ValidationFailed, "username is missing"))
		return
	}

	var user model.User
	if err := d.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.Error(c, apperr.New(apperr.NotFound, "Channel not found"))
			return
		}

		respond.Error(c, err)
		return
	}

	profile := channelProfile{
		Profile:    user.Profile(),
		CoverImage: user.CoverImage,
	}

	err := d.DB.Model(&model.Subscription{}).
		Where("channel_id = ?", user.ID).
		Count(&profile.SubscriberCount).Error
	if err != nil {
		respond.Error(c, err)
		return
	}

	err = d.DB.Model(&model.Subscription{}).
		Where("subscriber_id = ?", user.ID).
		Count(&profile.SubscribedToCount).Error
	if err != nil {
		respond.Error(c, err)
		return
	}

	if callerID := c.GetString("userID"); callerID != "" {
		var n int64
		err = d.DB.Model(&model.Subscription{}).
			Where("subscriber_id = ? AND channel_id = ?", callerID, user.ID).
			Count(&n).Error
		if err != nil {
			respond.Error(c, err)
			return
		}

		profile.IsSubscribed = n > 0
	}

	respond.JSON(c, http.StatusOK, profile, "Channel profile")
}
