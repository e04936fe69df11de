package tweet

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/query"
	"bitwise74/streamhub-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tweetListBody struct {
	StatusCode int               `json:"statusCode"`
	Data       []query.TweetView `json:"data"`
	Success    bool              `json:"success"`
}

func seedTweet(t *testing.T, d *internal.Deps, ownerID, content string) model.Tweet {
	t.Helper()

	id, err := model.NewID()
	require.NoError(t, err)

	tw := model.Tweet{ID: id, OwnerID: ownerID, Content: content}
	require.NoError(t, d.DB.Create(&tw).Error)

	return tw
}

func listReq(t *testing.T, d *internal.Deps, userID, rawQuery string) (*httptest.ResponseRecorder, tweetListBody) {
	t.Helper()

	target := "/api/tweets/user/" + userID
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	c, w := testutil.Ctx(t, http.MethodGet, target, nil)
	c.Params = gin.Params{{Key: "userId", Value: userID}}

	TweetList(c, d)

	var body tweetListBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return w, body
}

func TestTweetList(t *testing.T) {
	d := testutil.NewDeps(t)
	author := testutil.SeedUser(t, d.DB, "author")
	other := testutil.SeedUser(t, d.DB, "bystander")

	for i := 0; i < 3; i++ {
		seedTweet(t, d, author.ID, fmt.Sprintf("thought %d", i))
	}
	seedTweet(t, d, other.ID, "unrelated")

	w, body := listReq(t, d, author.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, body.Data, 3)
	for _, tw := range body.Data {
		assert.Equal(t, author.ID, tw.OwnerID)
		assert.Equal(t, "author", tw.Owner.Username)
	}
}

func TestTweetListSearch(t *testing.T) {
	d := testutil.NewDeps(t)
	author := testutil.SeedUser(t, d.DB, "rambler")
	seedTweet(t, d, author.ID, "shipping the release today")
	seedTweet(t, d, author.ID, "lunch was great")

	w, body := listReq(t, d, author.ID, "query=RELEASE")
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, body.Data, 1)
	assert.Equal(t, "shipping the release today", body.Data[0].Content)
}

func TestTweetListMissingUser(t *testing.T) {
	d := testutil.NewDeps(t)

	missingID, err := model.NewID()
	require.NoError(t, err)

	w, _ := listReq(t, d, missingID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = listReq(t, d, "bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
