// Package query implements the list pipeline shared by every paginated read.
// A pipeline is an explicit sequence of stages (filter, join, project, sort,
// paginate) applied to a gorm statement, so each stage can be tested on its
// own instead of as one opaque query.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"bitwise74/streamhub-api/internal/apperr"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Stage transforms a statement. Stages are composable and order matters:
// filters and joins before sort, sort before pagination.
type Stage func(*gorm.DB) *gorm.DB

type Pipeline []Stage

func (p Pipeline) Apply(db *gorm.DB) *gorm.DB {
	for _, s := range p {
		db = s(db)
	}

	return db
}

func (p Pipeline) List(db *gorm.DB, dest any) error {
	return p.Apply(db).Find(dest).Error
}

// Filter narrows the result set with a plain WHERE condition.
func Filter(cond string, args ...any) Stage {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(cond, args...)
	}
}

// Search is a case-insensitive substring match on column. A blank term is a
// no-op so handlers don't need to special-case it.
func Search(column, term string) Stage {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}

		return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(term)+"%")
	}
}

// Join adds a raw join clause, typically a LEFT JOIN so rows with a dangling
// reference still come back with an empty joined object instead of dropping
// out of the page.
func Join(clause string, args ...any) Stage {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins(clause, args...)
	}
}

// Project limits the selected columns to the whitelisted output fields.
func Project(cols string) Stage {
	return func(db *gorm.DB) *gorm.DB {
		return db.Select(cols)
	}
}

// OwnerJoin joins the owning user of table and projects only their public
// profile fields, aliased so they scan into the embedded Profile of a view
// struct. Credentials never enter the projection.
func OwnerJoin(table string) Stage {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN users ON users.id = " + table + ".owner_id").
			Select(table + ".*, " +
				"users.id AS owner__id, " +
				"users.username AS owner__username, " +
				"users.full_name AS owner__full_name, " +
				"users.avatar AS owner__avatar")
	}
}

// Group adds a GROUP BY, needed when a projection aggregates over a join.
func Group(cols string) Stage {
	return func(db *gorm.DB) *gorm.DB {
		return db.Group(cols)
	}
}

// Sort orders by a whitelisted column, tie-broken by the given columns so
// pagination is stable when the sort key repeats.
func Sort(column, direction string, tiebreak ...string) Stage {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Order(column + " " + direction)
		for _, t := range tiebreak {
			db = db.Order(t)
		}

		return db
	}
}

// Paginate skips (page-1)*limit rows and caps the result at limit. Callers
// must run page and limit through ParseParams first so the offset can never
// go negative.
func Paginate(page, limit int) Stage {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}

// Params are the normalized list inputs shared by every list endpoint.
type Params struct {
	Search  string
	SortCol string
	SortDir string
	Page    int
	Limit   int
}

// ParseParams validates the raw query string against a per-endpoint sort
// whitelist. Defaults: page 1, limit 10, newest first. Anything non-numeric,
// non-positive or outside the whitelist is a ValidationFailed, never a
// silently clamped value.
func ParseParams(values url.Values, sortable map[string]string, defaultSort string) (Params, error) {
	p := Params{
		Search:  values.Get("query"),
		Page:    1,
		Limit:   DefaultLimit,
		SortCol: sortable[defaultSort],
		SortDir: "desc",
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return p, apperr.New(apperr.ValidationFailed, "page must be a positive number")
		}
		p.Page = page
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return p, apperr.New(apperr.ValidationFailed, "limit must be a positive number")
		}
		if limit > MaxLimit {
			return p, apperr.New(apperr.ValidationFailed, fmt.Sprintf("limit must be %d or less", MaxLimit))
		}
		p.Limit = limit
	}

	if raw := values.Get("sortBy"); raw != "" {
		col, ok := sortable[raw]
		if !ok {
			return p, apperr.New(apperr.ValidationFailed, "invalid sortBy field")
		}
		p.SortCol = col
	}

	if raw := values.Get("sortType"); raw != "" {
		switch strings.ToLower(raw) {
		case "asc", "desc":
			p.SortDir = strings.ToLower(raw)
		default:
			return p, apperr.New(apperr.ValidationFailed, "sortType must be asc or desc")
		}
	}

	return p, nil
}

// Sort whitelists per entity. Keys are the public field names accepted in
// sortBy, values the qualified columns fed to ORDER BY.
var (
	VideoSortFields = map[string]string{
		"createdAt": "videos.created_at",
		"views":     "videos.views",
		"duration":  "videos.duration",
		"title":     "videos.title",
	}

	CommentSortFields = map[string]string{
		"createdAt": "comments.created_at",
	}

	TweetSortFields = map[string]string{
		"createdAt": "tweets.created_at",
	}

	PlaylistSortFields = map[string]string{
		"createdAt": "playlists.created_at",
		"name":      "playlists.name",
	}
)
