// Package testutil provides the shared fixtures used by handler and query
// tests: an in-memory database, fake collaborators and seeded entities.
package testutil

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bitwise74/streamhub-api/db"
	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/model"
	"bitwise74/streamhub-api/internal/service"
	"bitwise74/streamhub-api/pkg/security"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// NewDB opens a fresh in-memory database with the full schema. Each call
// gets its own database so tests can't see each other's rows.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return conn
}

// FakeStorage records uploads in memory and can be told to fail, so the
// no-partial-write behavior of upload paths is testable.
type FakeStorage struct {
	mu      sync.Mutex
	Objects map[string]string
	FailAll bool
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{Objects: map[string]string{}}
}

func (f *FakeStorage) Upload(_ context.Context, key, path, _ string) (string, error) {
	if f.FailAll {
		return "", fmt.Errorf("fake storage: upload refused")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.Objects[key] = path
	return "https://cdn.test/" + key, nil
}

func (f *FakeStorage) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, k := range keys {
		delete(f.Objects, k)
	}

	return nil
}

// FakeProber reports a fixed duration without touching ffprobe.
type FakeProber struct {
	Seconds float64
	Err     error
}

func (f FakeProber) Duration(string) (float64, error) {
	return f.Seconds, f.Err
}

var _ service.Storage = (*FakeStorage)(nil)
var _ service.Prober = FakeProber{}

// NewDeps builds a dependency bag over an in-memory database and fakes.
func NewDeps(t *testing.T) *internal.Deps {
	t.Helper()

	return &internal.Deps{
		DB:    NewDB(t),
		Argon: security.New(),
		Tokens: &security.TokenIssuer{
			AccessSecret:  []byte("test-access-secret"),
			RefreshSecret: []byte("test-refresh-secret"),
			AccessTTL:     time.Hour,
			RefreshTTL:    24 * time.Hour,
		},
		Storage: NewFakeStorage(),
		Prober:  FakeProber{Seconds: 42},
	}
}

// Ctx builds a gin test context around a real request, with the requestID
// the middleware would normally set.
func Ctx(t *testing.T, method, target string, body io.Reader) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, body)
	c.Set("requestID", "test")

	return c, w
}

// SeedUser inserts a minimal user and returns it.
func SeedUser(t *testing.T, conn *gorm.DB, username string) model.User {
	t.Helper()

	id, err := model.NewID()
	if err != nil {
		t.Fatalf("failed to generate id: %v", err)
	}

	user := model.User{
		ID:           id,
		Username:     username,
		Email:        username + "@example.com",
		FullName:     "User " + username,
		Avatar:       "https://cdn.test/" + username + ".png",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
	}

	if err := conn.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return user
}

// SeedVideo inserts a published video owned by ownerID and returns it.
func SeedVideo(t *testing.T, conn *gorm.DB, ownerID, title string) model.Video {
	t.Helper()

	id, err := model.NewID()
	if err != nil {
		t.Fatalf("failed to generate id: %v", err)
	}

	video := model.Video{
		ID:          id,
		OwnerID:     ownerID,
		VideoFile:   "https://cdn.test/" + id + ".mp4",
		Thumbnail:   "https://cdn.test/" + id + "_thumb.png",
		Title:       title,
		Description: "about " + title,
		Duration:    12.5,
		IsPublished: true,
	}

	if err := conn.Create(&video).Error; err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}

	return video
}

// SeedComment inserts a comment on a video.
func SeedComment(t *testing.T, conn *gorm.DB, ownerID, videoID, content string) model.Comment {
	t.Helper()

	id, err := model.NewID()
	if err != nil {
		t.Fatalf("failed to generate id: %v", err)
	}

	comment := model.Comment{
		ID:      id,
		OwnerID: ownerID,
		VideoID: videoID,
		Content: content,
	}

	if err := conn.Create(&comment).Error; err != nil {
		t.Fatalf("failed to seed comment: %v", err)
	}

	return comment
}
