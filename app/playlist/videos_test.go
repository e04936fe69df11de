package playlist

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

func seedPlaylist(t *testing.T, d *internal.Deps, ownerID string) model.Playlist {
	t.Helper()

	id, err := model.NewID()
	require.NoError(t, err)

	pl := model.Playlist{
		ID:          id,
		OwnerID:     ownerID,
		Name:        "watch later",
		Description: "things to get to",
	}
	require.NoError(t, d.DB.Create(&pl).Error)

	return pl
}

func addVideoReq(t *testing.T, d *internal.Deps, userID, playlistID, videoID string) (*httptest.ResponseRecorder, respond.Envelope) {
	t.Helper()

	c, w := testutil.Ctx(t, http.MethodPatch, "/api/playlists/"+playlistID+"/videos/"+videoID, nil)
	c.Set("userID", userID)
	c.Params = gin.Params{
		{Key: "playlistId", Value: playlistID},
		{Key: "videoId", Value: videoID},
	}

	PlaylistAddVideo(c, d)

	var env respond.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	return w, env
}

func TestPlaylistAddVideoAssignsPositions(t *testing.T) {
	d := testutil.NewDeps(t)
	owner := testutil.SeedUser(t, d.DB, "curator")
	pl := seedPlaylist(t, d, owner.ID)
	v1 := testutil.SeedVideo(t, d.DB, owner.ID, "first")
	v2 := testutil.SeedVideo(t, d.DB, owner.ID, "second")

	w, _ := addVideoReq(t, d, owner.ID, pl.ID, v1.ID)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = addVideoReq(t, d, owner.ID, pl.ID, v2.ID)
	require.Equal(t, http.StatusOK, w.Code)

	entries := []model.PlaylistVideo{}
	require.NoError(t, d.DB.
		Where("playlist_id = ?", pl.ID).
		Order("position").
		Find(&entries).Error)

	require.Len(t, entries, 2)
	assert.Equal(t, v1.ID, entries[0].VideoID)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, v2.ID, entries[1].VideoID)
	assert.Equal(t, 2, entries[1].Position)
}

func TestPlaylistAddVideoAppendsPastGaps(t *testing.T) {
	d := testutil.NewDeps(t)
	owner := testutil.SeedUser(t, d.DB, "gap_curator")
	pl := seedPlaylist(t, d, owner.ID)
	v1 := testutil.SeedVideo(t, d.DB, owner.ID, "first")
	v2 := testutil.SeedVideo(t, d.DB, owner.ID, "second")
	v3 := testutil.SeedVideo(t, d.DB, owner.ID, "third")

	for _, vid := range []string{v1.ID, v2.ID} {
		w, _ := addVideoReq(t, d, owner.ID, pl.ID, vid)
		require.Equal(t, http.StatusOK, w.Code)
	}

	require.NoError(t, d.DB.
		Where("playlist_id = ? AND video_id = ?", pl.ID, v1.ID).
		Delete(&model.PlaylistVideo{}).Error)

	w, _ := addVideoReq(t, d, owner.ID, pl.ID, v3.ID)
	require.Equal(t, http.StatusOK, w.Code)

	entries := []model.PlaylistVideo{}
	require.NoError(t, d.DB.
		Where("playlist_id = ?", pl.ID).
		Order("position").
		Find(&entries).Error)

	require.Len(t, entries, 2)
	assert.Equal(t, v2.ID, entries[0].VideoID)
	assert.Equal(t, 2, entries[0].Position)
	assert.Equal(t, v3.ID, entries[1].VideoID)
	assert.Equal(t, 3, entries[1].Position)
}

func TestPlaylistAddVideoDuplicateIsNoop(t *testing.T) {
	d := testutil.NewDeps(t)
	owner := testutil.SeedUser(t, d.DB, "repeater")
	pl := seedPlaylist(t, d, owner.ID)
	video := testutil.SeedVideo(t, d.DB, owner.ID, "favorite")

	w, _ := addVideoReq(t, d, owner.ID, pl.ID, video.ID)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := addVideoReq(t, d, owner.ID, pl.ID, video.ID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var n int64
	require.NoError(t, d.DB.Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", pl.ID).
		Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestPlaylistAddVideoForeignPlaylist(t *testing.T) {
	d := testutil.NewDeps(t)
	owner := testutil.SeedUser(t, d.DB, "rightful")
	intruder := testutil.SeedUser(t, d.DB, "intruder")
	pl := seedPlaylist(t, d, owner.ID)
	video := testutil.SeedVideo(t, d.DB, owner.ID, "protected")

	w, env := addVideoReq(t, d, intruder.ID, pl.ID, video.ID)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, env.Success)

	var n int64
	require.NoError(t, d.DB.Model(&model.PlaylistVideo{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestPlaylistRemoveVideoAbsentIsQuiet(t *testing.T) {
	d := testutil.NewDeps(t)
	owner := testutil.SeedUser(t, d.DB, "tidy")
	pl := seedPlaylist(t, d, owner.ID)
	video := testutil.SeedVideo(t, d.DB, owner.ID, "never added")

	c, w := testutil.Ctx(t, http.MethodDelete, "/api/playlists/"+pl.ID+"/videos/"+video.ID, nil)
	c.Set("userID", owner.ID)
	c.Params = gin.Params{
		{Key: "playlistId", Value: pl.ID},
		{Key: "videoId", Value: video.ID},
	}

	PlaylistRemoveVideo(c, d)
	assert.Equal(t, http.StatusOK, w.Code)
}
