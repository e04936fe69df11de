package model

import "time"

type User struct {
	ID       string `gorm:"primaryKey;size:16" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	FullName string `gorm:"uniqueIndex;not null" json:"fullName"`

	// Public URLs served from the object store
	Avatar     string `gorm:"not null" json:"avatar"`
	CoverImage string `json:"coverImage,omitempty"`

	// Only ever set through ArgonHash.GenerateFromPassword. Never serialized.
	PasswordHash string `gorm:"not null" json:"-"`
	RefreshToken string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile is the owner projection joined into list results. Credentials and
// private fields stay out of it.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Avatar:   u.Avatar,
	}
}

// WatchEntry records one video in a user's watch history. Re-watching bumps
// WatchedAt instead of inserting a second row.
type WatchEntry struct {
	UserID    string    `gorm:"primaryKey;size:16" json:"-"`
	VideoID   string    `gorm:"primaryKey;size:16" json:"videoId"`
	WatchedAt time.Time `gorm:"index;not null" json:"watchedAt"`
}
