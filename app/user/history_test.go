package user

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/query"
	"bitwise74/streamhub-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type historyBody struct {
	StatusCode int               `json:"statusCode"`
	Data       []query.VideoView `json:"data"`
	Success    bool              `json:"success"`
}

func TestUserWatchHistory(t *testing.T) {
	d := testutil.NewDeps(t)
	owner := testutil.SeedUser(t, d.DB, "producer")
	watcher := testutil.SeedUser(t, d.DB, "binger")

	older := testutil.SeedVideo(t, d.DB, owner.ID, "watched first")
	newer := testutil.SeedVideo(t, d.DB, owner.ID, "watched second")
	testutil.SeedVideo(t, d.DB, owner.ID, "never watched")

	now := time.Now()
	require.NoError(t, d.DB.Create(&model.WatchEntry{
		UserID: watcher.ID, VideoID: older.ID, WatchedAt: now.Add(-time.Hour),
	}).Error)
	require.NoError(t, d.DB.Create(&model.WatchEntry{
		UserID: watcher.ID, VideoID: newer.ID, WatchedAt: now,
	}).Error)

	c, w := testutil.Ctx(t, http.MethodGet, "/api/users/history", nil)
	c.Set("userID", watcher.ID)
	UserWatchHistory(c, d)

	require.Equal(t, http.StatusOK, w.Code)

	var body historyBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Len(t, body.Data, 2)
	assert.Equal(t, newer.ID, body.Data[0].ID)
	assert.Equal(t, older.ID, body.Data[1].ID)
	assert.Equal(t, "producer", body.Data[0].Owner.Username)
}

func TestUserWatchHistoryEmpty(t *testing.T) {
	d := testutil.NewDeps(t)
	watcher := testutil.SeedUser(t, d.DB, "newcomer")

	c, w := testutil.Ctx(t, http.MethodGet, "/api/users/history", nil)
	c.Set("userID", watcher.ID)
	UserWatchHistory(c, d)

	require.Equal(t, http.StatusOK, w.Code)

	var body historyBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
}
