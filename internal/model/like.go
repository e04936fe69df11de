package model

import "time"

// Valid Like targets. The discriminator makes "exactly one target" structural
// instead of three nullable columns.
const (
	TargetVideo   = "video"
	TargetComment = "comment"
	TargetTweet   = "tweet"
)

// Like existence means "liked". The composite unique index is what makes the
// toggle race-safe: two concurrent creates for the same (user, target) pair
// can't both succeed.
type Like struct {
	ID         string `gorm:"primaryKey;size:16" json:"id"`
	LikedByID  string `gorm:"uniqueIndex:idx_like_target;size:16;not null" json:"likedById"`
	TargetKind string `gorm:"uniqueIndex:idx_like_target;size:8;not null" json:"targetKind"`
	TargetID   string `gorm:"uniqueIndex:idx_like_target;size:16;not null" json:"targetId"`

	CreatedAt time.Time `json:"createdAt"`
}

func ValidTarget(kind string) bool {
	return kind == TargetVideo || kind == TargetComment || kind == TargetTweet
}
