package query

import "bitwise74/streamhub-api/internal/model"

// View structs are what list pipelines scan into: the entity plus the joined
// owner profile as a single object. When the LEFT JOIN finds no owner the
// profile is zero-valued, not an error.

type VideoView struct {
	model.Video
	Owner model.Profile `gorm:"embedded;embeddedPrefix:owner__" json:"owner"`
}

type CommentView struct {
	model.Comment
	Owner model.Profile `gorm:"embedded;embeddedPrefix:owner__" json:"owner"`
}

type TweetView struct {
	model.Tweet
	Owner model.Profile `gorm:"embedded;embeddedPrefix:owner__" json:"owner"`
}
