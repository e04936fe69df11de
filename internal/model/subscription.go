package model

import "time"

// Subscription existence means "subscriber follows channel". Channels are
// just users. The unique pair index backs the toggle the same way it does
// for likes.
type Subscription struct {
	ID           string `gorm:"primaryKey;size:16" json:"id"`
	SubscriberID string `gorm:"uniqueIndex:idx_sub_pair;size:16;not null" json:"subscriberId"`
	ChannelID    string `gorm:"uniqueIndex:idx_sub_pair;size:16;not null" json:"channelId"`

	CreatedAt time.Time `json:"createdAt"`
}
