package model

import "time"

type Video struct {
	ID      string `gorm:"primaryKey;size:16" json:"id"`
	OwnerID string `gorm:"index;size:16;not null" json:"ownerId"`

	VideoFile   string `gorm:"not null" json:"videoFile"`
	Thumbnail   string `gorm:"not null" json:"thumbnail"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	// Seconds, measured with ffprobe at publish time. Never user supplied.
	Duration    float64 `json:"duration"`
	Views       int64   `json:"views"`
	IsPublished bool    `json:"isPublished"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
