// Package subscription contains the channel subscription endpoints
package subscription

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/respond"
	"bitwise74/streamhub-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SubscriptionToggle flips whether the caller follows a channel. Subscribing
// to yourself is forbidden. Same row-existence semantics as the like toggle,
// backed by the unique (subscriber, channel) index.
func SubscriptionToggle(c *gin.Context, d *internal.Deps) {
	userID := c.MustGet("userID").(string)

	channelID := c.Param("channelId")
	if err := validators.IDValidator(channelID); err != nil {
		respond.Error(c, apperr.New(apperr.InvalidIdentifier, "Invalid channel id"))
		return
	}

	if channelID == userID {
		respond.Error(c, apperr.New(apperr.Forbidden, "You can't subscribe to yourself"))
		return
	}

	var channel model.User
	if err := d.DB.Select("id").Where("id = ?", channelID).First(&channel).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			respond.Error(c, apperr.New(apperr.NotFound, "Channel not found"))
			return
		}

		respond.Error(c, err)
		return
	}

	res := d.DB.
		Where("subscriber_id = ? AND channel_id = ?", userID, channelID).
		Delete(&model.Subscription{})
	if res.Error != nil {
		respond.Error(c, res.Error)
		return
	}

	if res.RowsAffected > 0 {
		respond.JSON(c, http.StatusOK, gin.H{"subscribed": false}, "Unsubscribed")
		return
	}

	subID, err := model.NewID()
	if err != nil {
		respond.Error(c, err)
		return
	}

	err = d.DB.Create(&model.Subscription{
		ID:           subID,
		SubscriberID: userID,
		ChannelID:    channelID,
	}).Error
	if err != nil && !model.IsDuplicate(err) {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"subscribed": true}, "Subscribed")
}
