package query

import (
	"sync"

	"bitwise74/streamhub-api/internal/model"

	"gorm.io/gorm"
)

type ChannelStats struct {
	TotalVideos       int64 `json:"totalVideos"`
	TotalSubscribers  int64 `json:"totalSubscribers"`
	TotalViews        int64 `json:"totalViews"`
	TotalVideoLikes   int64 `json:"totalVideoLikes"`
	TotalCommentLikes int64 `json:"totalCommentLikes"`
	TotalTweetLikes   int64 `json:"totalTweetLikes"`
	TotalLikes        int64 `json:"totalLikes"`
}

// Channel computes the dashboard rollup for one owning user. The six counts
// are independent, so they run concurrently and get combined at the end.
// Every count comes from COUNT/COALESCE(SUM), so a channel with nothing owned
// reports zeroes, never null.
func Channel(db *gorm.DB, ownerID string) (*ChannelStats, error) {
	var s ChannelStats

	var wg sync.WaitGroup
	errs := make(chan error, 6)

	run := func(f func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- f()
		}()
	}

	run(func() error {
		return db.Model(&model.Video{}).
			Where("owner_id = ?", ownerID).
			Count(&s.TotalVideos).Error
	})

	run(func() error {
		return db.Model(&model.Subscription{}).
			Where("channel_id = ?", ownerID).
			Count(&s.TotalSubscribers).Error
	})

	run(func() error {
		return db.Model(&model.Video{}).
			Where("owner_id = ?", ownerID).
			Select("COALESCE(SUM(views), 0)").
			Scan(&s.TotalViews).Error
	})

	run(func() error { return likeCount(db, model.TargetVideo, "videos", ownerID, &s.TotalVideoLikes) })
	run(func() error { return likeCount(db, model.TargetComment, "comments", ownerID, &s.TotalCommentLikes) })
	run(func() error { return likeCount(db, model.TargetTweet, "tweets", ownerID, &s.TotalTweetLikes) })

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return nil, err
		}
	}

	s.TotalLikes = s.TotalVideoLikes + s.TotalCommentLikes + s.TotalTweetLikes

	return &s, nil
}

// likeCount counts likes whose target of the given kind is owned by ownerID.
// One joined count per kind instead of loading the owned id set first.
func likeCount(db *gorm.DB, kind, table, ownerID string, dst *int64) error {
	return db.Model(&model.Like{}).
		Joins("JOIN "+table+" ON "+table+".id = likes.target_id").
		Where("likes.target_kind = ? AND "+table+".owner_id = ?", kind, ownerID).
		Count(dst).Error
}
