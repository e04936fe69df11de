package model

import "time"

type Comment struct {
	ID      string `gorm:"primaryKey;size:16" json:"id"`
	OwnerID string `gorm:"index;size:16;not null" json:"ownerId"`
	VideoID string `gorm:"index;size:16;not null" json:"videoId"`

	Content string `gorm:"not null" json:"content"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
