package subscription

import (
	"net/http"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/query"
	"bitwise74/streamhub-api/pkg/respond"
	"bitwise74/streamhub-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

var subscriptionSortFields = map[string]string{
	"subscribedAt": "subscriptions.created_at",
}

// SubscriberList pages through the profiles following a channel.
func SubscriberList(c *gin.Context, d *internal.Deps) {
	listProfiles(c, d, "channel_id", c.Param("channelId"), "subscriber_id", "Subscribers")
}

// SubscribedChannelList pages through the channels a user follows.
func SubscribedChannelList(c *gin.Context, d *internal.Deps) {
	listProfiles(c, d, "subscriber_id", c.Param("subscriberId"), "channel_id", "Subscribed channels")
}

func listProfiles(c *gin.Context, d *internal.Deps, scopeCol, scopeID, joinCol, msg string) {
	if err := validators.IDValidator(scopeID); err != nil {
		respond.Error(c, apperr.New(apperr.InvalidIdentifier, "Invalid user id"))
		return
	}

	params, err := query.ParseParams(c.Request.URL.Query(), subscriptionSortFields, "subscribedAt")
	if err != nil {
		respond.Error(c, err)
		return
	}

	pipe := query.Pipeline{
		query.Filter("subscriptions."+scopeCol+" = ?", scopeID),
		query.Join("JOIN users ON users.id = subscriptions." + joinCol),
		query.Project("users.id, users.username, users.full_name, users.avatar"),
		query.Sort(params.SortCol, params.SortDir, "subscriptions.id"),
		query.Paginate(params.Page, params.Limit),
	}

	profiles := []model.Profile{}
	if err := pipe.List(d.DB.Model(&model.Subscription{}), &profiles); err != nil {
		respond.Error(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, profiles, msg)
}
