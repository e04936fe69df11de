package video

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deleteReq(t *testing.T, d *internal.Deps, userID, videoID string) *httptest.ResponseRecorder {
	t.Helper()

	c, w := testutil.Ctx(t, http.MethodDelete, "/api/videos/"+videoID, nil)
	c.Set("userID", userID)
	c.Params = gin.Params{{Key: "videoId", Value: videoID}}

	VideoDelete(c, d)

	return w
}

func TestVideoDeleteCascades(t *testing.T) {
	d := testutil.NewDeps(t)
	owner := testutil.SeedUser(t, d.DB, "deleter")
	fan := testutil.SeedUser(t, d.DB, "deleter_fan")
	video := testutil.SeedVideo(t, d.DB, owner.ID, "doomed")
	comment := testutil.SeedComment(t, d.DB, fan.ID, video.ID, "keep it!")

	for kind, target := range map[string]string{
		model.TargetVideo:   video.ID,
		model.TargetComment: comment.ID,
	} {
		id, err := model.NewID()
		require.NoError(t, err)
		require.NoError(t, d.DB.Create(&model.Like{
			ID:         id,
			LikedByID:  fan.ID,
			TargetKind: kind,
			TargetID:   target,
		}).Error)
	}

	require.NoError(t, d.DB.Create(&model.WatchEntry{
		UserID:    fan.ID,
		VideoID:   video.ID,
		WatchedAt: time.Now(),
	}).Error)

	w := deleteReq(t, d, owner.ID, video.ID)
	require.Equal(t, http.StatusOK, w.Code)

	for _, m := range []any{&model.Video{}, &model.Comment{}, &model.Like{}, &model.WatchEntry{}} {
		var n int64
		require.NoError(t, d.DB.Model(m).Count(&n).Error)
		assert.EqualValues(t, 0, n)
	}
}

func TestVideoDeleteForeignVideo(t *testing.T) {
	d := testutil.NewDeps(t)
	owner := testutil.SeedUser(t, d.DB, "keeper")
	intruder := testutil.SeedUser(t, d.DB, "vandal")
	video := testutil.SeedVideo(t, d.DB, owner.ID, "safe")

	w := deleteReq(t, d, intruder.ID, video.ID)
	assert.Equal(t, http.StatusForbidden, w.Code)

	err := d.DB.Where("id = ?", video.ID).First(&model.Video{}).Error
	assert.NoError(t, err)
}

func TestVideoDeleteMissing(t *testing.T) {
	d := testutil.NewDeps(t)
	owner := testutil.SeedUser(t, d.DB, "confused")

	missingID, err := model.NewID()
	require.NoError(t, err)

	w := deleteReq(t, d, owner.ID, missingID)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = deleteReq(t, d, owner.ID, "short")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
