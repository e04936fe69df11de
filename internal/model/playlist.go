package model

import "time"

type Playlist struct {
	ID      string `gorm:"primaryKey;size:16" json:"id"`
	OwnerID string `gorm:"index;size:16;not null" json:"ownerId"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlaylistVideo keeps the playlist's video list ordered and duplicate-free.
// The composite primary key makes re-adding the same video a conflict the
// handler downgrades to a no-op.
type PlaylistVideo struct {
	PlaylistID string `gorm:"primaryKey;size:16" json:"playlistId"`
	VideoID    string `gorm:"primaryKey;size:16" json:"videoId"`

	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}
