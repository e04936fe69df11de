package like

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/testutil"
	"bitwise74/streamhub-api/pkg/respond"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toggleVideoReq(t *testing.T, d *internal.Deps, userID, videoID string) (*httptest.ResponseRecorder, respond.Envelope) {
	t.Helper()

	c, w := testutil.Ctx(t, http.MethodPost, "/api/likes/toggle/video/"+videoID, nil)
	c.Set("userID", userID)
	c.Params = gin.Params{{Key: "videoId", Value: videoID}}

	LikeToggleVideo(c, d)

	var env respond.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	return w, env
}

func TestLikeToggleRoundTrip(t *testing.T) {
	d := testutil.NewDeps(t)
	owner := testutil.SeedUser(t, d.DB, "like_owner")
	fan := testutil.SeedUser(t, d.DB, "like_fan")
	video := testutil.SeedVideo(t, d.DB, owner.ID, "likeable")

	w, env := toggleVideoReq(t, d, fan.ID, video.ID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Liked", env.Message)
	assert.Equal(t, true, env.Data.(map[string]any)["liked"])

	var n int64
	require.NoError(t, d.DB.Model(&model.Like{}).
		Where("liked_by_id = ? AND target_kind = ? AND target_id = ?", fan.ID, model.TargetVideo, video.ID).
		Count(&n).Error)
	assert.EqualValues(t, 1, n)

	w, env = toggleVideoReq(t, d, fan.ID, video.ID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Unliked", env.Message)
	assert.Equal(t, false, env.Data.(map[string]any)["liked"])

	require.NoError(t, d.DB.Model(&model.Like{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestLikeToggleMissingTarget(t *testing.T) {
	d := testutil.NewDeps(t)
	fan := testutil.SeedUser(t, d.DB, "lost_fan")

	missingID, err := model.NewID()
	require.NoError(t, err)

	w, env := toggleVideoReq(t, d, fan.ID, missingID)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)

	var n int64
	require.NoError(t, d.DB.Model(&model.Like{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestLikeToggleMalformedID(t *testing.T) {
	d := testutil.NewDeps(t)
	fan := testutil.SeedUser(t, d.DB, "picky_fan")

	w, env := toggleVideoReq(t, d, fan.ID, "not-a-valid-id!")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestLikeToggleCommentAndTweet(t *testing.T) {
	d := testutil.NewDeps(t)
	owner := testutil.SeedUser(t, d.DB, "content_owner")
	fan := testutil.SeedUser(t, d.DB, "mixed_fan")
	video := testutil.SeedVideo(t, d.DB, owner.ID, "commented")
	comment := testutil.SeedComment(t, d.DB, owner.ID, video.ID, "nice")

	tweetID, err := model.NewID()
	require.NoError(t, err)
	require.NoError(t, d.DB.Create(&model.Tweet{
		ID:      tweetID,
		OwnerID: owner.ID,
		Content: "hello",
	}).Error)

	c, w := testutil.Ctx(t, http.MethodPost, "/api/likes/toggle/comment/"+comment.ID, nil)
	c.Set("userID", fan.ID)
	c.Params = gin.Params{{Key: "commentId", Value: comment.ID}}
	LikeToggleComment(c, d)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.Ctx(t, http.MethodPost, "/api/likes/toggle/tweet/"+tweetID, nil)
	c.Set("userID", fan.ID)
	c.Params = gin.Params{{Key: "tweetId", Value: tweetID}}
	LikeToggleTweet(c, d)
	require.Equal(t, http.StatusOK, w.Code)

	var kinds []string
	require.NoError(t, d.DB.Model(&model.Like{}).
		Where("liked_by_id = ?", fan.ID).
		Order("target_kind").
		Pluck("target_kind", &kinds).Error)
	assert.Equal(t, []string{model.TargetComment, model.TargetTweet}, kinds)
}
