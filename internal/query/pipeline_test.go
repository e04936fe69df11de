package query_test

import (
	"fmt"
	"net/url"
	"testing"

	"bitwise74/streamhub-api/internal/apperr"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/query"
	"bitwise74/streamhub-api/internal/testutil"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestParseParamsDefaults(t *testing.T) {
	p, err := query.ParseParams(url.Values{}, query.VideoSortFields, "createdAt")
	require.NoError(t, err)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, query.DefaultLimit, p.Limit)
	assert.Equal(t, "videos.created_at", p.SortCol)
	assert.Equal(t, "desc", p.SortDir)
	assert.Empty(t, p.Search)
}

func TestParseParamsRejections(t *testing.T) {
	cases := []struct {
		name   string
		values url.Values
	}{
		{"non-numeric page", url.Values{"page": {"abc"}}},
		{"zero page", url.Values{"page": {"0"}}},
		{"negative page", url.Values{"page": {"-3"}}},
		{"non-numeric limit", url.Values{"limit": {"ten"}}},
		{"zero limit", url.Values{"limit": {"0"}}},
		{"limit over cap", url.Values{"limit": {"101"}}},
		{"unknown sortBy", url.Values{"sortBy": {"passwordHash"}}},
		{"bogus sortType", url.Values{"sortType": {"sideways"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := query.ParseParams(tc.values, query.VideoSortFields, "createdAt")
			require.Error(t, err)
			assert.Equal(t, apperr.ValidationFailed, apperr.From(err).Kind)
		})
	}
}

func TestParseParamsAccepted(t *testing.T) {
	p, err := query.ParseParams(url.Values{
		"page":     {"3"},
		"limit":    {"25"},
		"sortBy":   {"views"},
		"sortType": {"ASC"},
		"query":    {"cats"},
	}, query.VideoSortFields, "createdAt")
	require.NoError(t, err)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, "videos.views", p.SortCol)
	assert.Equal(t, "asc", p.SortDir)
	assert.Equal(t, "cats", p.Search)
}

func listPage(t *testing.T, conn *gorm.DB, page, limit int) []query.VideoView {
	t.Helper()

	pipe := query.Pipeline{
		query.Filter("videos.is_published = ?", true),
		query.OwnerJoin("videos"),
		query.Sort("videos.created_at", "desc", "videos.id"),
		query.Paginate(page, limit),
	}

	videos := []query.VideoView{}
	require.NoError(t, pipe.List(conn.Model(&model.Video{}), &videos))

	return videos
}

func TestPipelinePaginationProperties(t *testing.T) {
	conn := testutil.NewDB(t)
	owner := testutil.SeedUser(t, conn, "paging_owner")

	const total = 25
	for i := 0; i < total; i++ {
		testutil.SeedVideo(t, conn, owner.ID, fmt.Sprintf("video %02d", i))
	}

	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 50

	properties := gopter.NewProperties(params)

	properties.Property("a page never exceeds its limit", prop.ForAll(
		func(page, limit int) bool {
			return len(listPage(t, conn, page, limit)) <= limit
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 20),
	))

	properties.Property("consecutive pages are disjoint", prop.ForAll(
		func(page, limit int) bool {
			seen := map[string]bool{}
			for _, v := range listPage(t, conn, page, limit) {
				seen[v.ID] = true
			}

			for _, v := range listPage(t, conn, page+1, limit) {
				if seen[v.ID] {
					return false
				}
			}

			return true
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 20),
	))

	properties.Property("pages cover everything exactly once", prop.ForAll(
		func(limit int) bool {
			seen := map[string]bool{}

			for page := 1; ; page++ {
				rows := listPage(t, conn, page, limit)
				if len(rows) == 0 {
					break
				}

				for _, v := range rows {
					if seen[v.ID] {
						return false
					}
					seen[v.ID] = true
				}
			}

			return len(seen) == total
		},
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}

func TestPipelineOwnerJoinProjectsProfile(t *testing.T) {
	conn := testutil.NewDB(t)
	owner := testutil.SeedUser(t, conn, "join_owner")
	testutil.SeedVideo(t, conn, owner.ID, "joined")

	videos := listPage(t, conn, 1, 10)
	require.Len(t, videos, 1)

	assert.Equal(t, owner.ID, videos[0].Owner.ID)
	assert.Equal(t, "join_owner", videos[0].Owner.Username)
	assert.Equal(t, owner.Avatar, videos[0].Owner.Avatar)
}

func TestPipelineSearchFiltersCaseInsensitive(t *testing.T) {
	conn := testutil.NewDB(t)
	owner := testutil.SeedUser(t, conn, "search_owner")
	testutil.SeedVideo(t, conn, owner.ID, "Cooking Pasta")
	testutil.SeedVideo(t, conn, owner.ID, "Woodworking")

	pipe := query.Pipeline{
		query.Search("videos.title", "PASTA"),
		query.Sort("videos.created_at", "desc", "videos.id"),
		query.Paginate(1, 10),
	}

	videos := []model.Video{}
	require.NoError(t, pipe.List(conn.Model(&model.Video{}), &videos))

	require.Len(t, videos, 1)
	assert.Equal(t, "Cooking Pasta", videos[0].Title)
}
