// Package app wires every endpoint into the gin engine
package app

import (
	"fmt"
	"time"

	"bitwise74/streamhub-api/app/comment"
	"bitwise74/streamhub-api/app/dashboard"
	"bitwise74/streamhub-api/app/like"
	"bitwise74/streamhub-api/app/playlist"
	"bitwise74/streamhub-api/app/root"
	"bitwise74/streamhub-api/app/subscription"
	"bitwise74/streamhub-api/app/tweet"
	"bitwise74/streamhub-api/app/user"
	"bitwise74/streamhub-api/app/video"
	"bitwise74/streamhub-api/aws"
	"bitwise74/streamhub-api/db"
	"bitwise74/streamhub-api/internal"
	"bitwise74/streamhub-api/internal/service"
	"bitwise74/streamhub-api/pkg/middleware"
	"bitwise74/streamhub-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

func NewRouter() (*gin.Engine, error) {
	d := &internal.Deps{}

	conn, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	d.DB = conn

	makeLogger()

	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors_origins"),
			AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	d.Argon = security.New()
	d.Tokens = security.NewTokenIssuer()
	d.Prober = service.FFProbe{}

	s3, err := aws.NewS3()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
	}
	d.Storage = service.NewS3Storage(s3, viper.GetString("storage.public_url"))

	jwt := middleware.NewJWTMiddleware(conn, d.Tokens)
	optJWT := middleware.NewOptionalJWTMiddleware(d.Tokens)
	maxUploadSize := viper.GetInt64("upload.max_size")

	h := func(f func(*gin.Context, *internal.Deps)) gin.HandlerFunc {
		return func(c *gin.Context) { f(c, d) }
	}

	m := router.Group("/api")
	{
		// HEAD /api/heartbeat		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)
	}

	u := m.Group("/users", middleware.BodySizeLimiter(maxUploadSize))
	{
		u.POST("/register", h(user.UserRegister))
		u.POST("/login", h(user.UserLogin))
		u.POST("/logout", jwt, h(user.UserLogout))
		u.POST("/refresh-token", h(user.UserRefreshToken))
		u.POST("/change-password", jwt, h(user.UserChangePassword))
		u.GET("/me", jwt, h(user.UserFetch))
		u.PATCH("/me", jwt, h(user.UserUpdateAccount))
		u.PATCH("/avatar", jwt, h(user.UserUpdateAvatar))
		u.PATCH("/cover-image", jwt, h(user.UserUpdateCoverImage))
		u.GET("/channel/:username", optJWT, h(user.UserChannelProfile))
		u.GET("/history", jwt, h(user.UserWatchHistory))
	}

	v := m.Group("/videos")
	{
		v.GET("", optJWT, cacheFor(15), h(video.VideoList))
		v.POST("", jwt, middleware.BodySizeLimiter(maxUploadSize), h(video.VideoPublish))
		v.GET("/:videoId", optJWT, h(video.VideoFetch))
		v.PATCH("/:videoId", jwt, h(video.VideoEdit))
		v.DELETE("/:videoId", jwt, h(video.VideoDelete))
		v.PATCH("/:videoId/toggle-publish", jwt, h(video.VideoTogglePublish))
	}

	cm := m.Group("/comments")
	{
		cm.GET("/:videoId", h(comment.CommentList))
		cm.POST("/:videoId", jwt, h(comment.CommentAdd))
		cm.PATCH("/c/:commentId", jwt, h(comment.CommentEdit))
		cm.DELETE("/c/:commentId", jwt, h(comment.CommentDelete))
	}

	l := m.Group("/likes", jwt)
	{
		l.POST("/toggle/video/:videoId", h(like.LikeToggleVideo))
		l.POST("/toggle/comment/:commentId", h(like.LikeToggleComment))
		l.POST("/toggle/tweet/:tweetId", h(like.LikeToggleTweet))
		l.GET("/videos", h(like.LikedVideos))
	}

	t := m.Group("/tweets")
	{
		t.POST("", jwt, h(tweet.TweetCreate))
		t.GET("/user/:userId", h(tweet.TweetList))
		t.PATCH("/:tweetId", jwt, h(tweet.TweetEdit))
		t.DELETE("/:tweetId", jwt, h(tweet.TweetDelete))
	}

	p := m.Group("/playlists")
	{
		p.POST("", jwt, h(playlist.PlaylistCreate))
		p.GET("/user/:userId", h(playlist.PlaylistListByUser))
		p.GET("/:playlistId", h(playlist.PlaylistFetch))
		p.PATCH("/:playlistId", jwt, h(playlist.PlaylistEdit))
		p.DELETE("/:playlistId", jwt, h(playlist.PlaylistDelete))
		p.PATCH("/:playlistId/videos/:videoId", jwt, h(playlist.PlaylistAddVideo))
		p.DELETE("/:playlistId/videos/:videoId", jwt, h(playlist.PlaylistRemoveVideo))
	}

	s := m.Group("/subscriptions")
	{
		s.POST("/toggle/:channelId", jwt, h(subscription.SubscriptionToggle))
		s.GET("/subscribers/:channelId", h(subscription.SubscriberList))
		s.GET("/channels/:subscriberId", h(subscription.SubscribedChannelList))
	}

	dash := m.Group("/dashboard", jwt)
	{
		dash.GET("/stats", h(dashboard.DashboardStats))
		dash.GET("/videos", h(dashboard.DashboardVideos))
	}

	return router, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	level, err := zapcore.ParseLevel(viper.GetString("app.log_level"))
	if err == nil {
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
