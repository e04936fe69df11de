package model

import "time"

type Tweet struct {
	ID      string `gorm:"primaryKey;size:16" json:"id"`
	OwnerID string `gorm:"index;size:16;not null" json:"ownerId"`

	Content string `gorm:"not null" json:"content"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
