package video

import (
	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/pkg/validators"

	"gorm.io/gorm"
)

// loadOwned fetches a video after the identifier and ownership checks every
// owner-scoped mutation starts with.
func loadOwned(d *internal.Deps, videoID, userID string) (*model.Video, error) {
	if err := validators.IDValidator(videoID); err != nil {
		return nil, apperr.New(apperr.InvalidIdentifier, "Invalid video id")
	}

	var video model.Video
	if err := d.DB.Where("id = ?", videoID).First(&video).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.New(apperr.NotFound, "Video not found")
		}

		return nil, err
	}

	if video.OwnerID != userID {
		return nil, apperr.New(apperr.Forbidden, "You don't own this video")
	}

	return &video, nil
}
