package router

import (
	"tubehub/internal/api/handler"
	"tubehub/internal/api/middleware"
	"tubehub/internal/api/response"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	videoHandler *handler.VideoHandler,
	commentHandler *handler.CommentHandler,
	likeHandler *handler.LikeHandler,
	playlistHandler *handler.PlaylistHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	tweetHandler *handler.TweetHandler,
	dashboardHandler *handler.DashboardHandler,
	searchHandler *handler.SearchHandler,
) {
	v1 := r.Group("/api/v1")

	v1.GET("/healthcheck", func(c *gin.Context) {
		response.OK(c, "ok", gin.H{"status": "ok"})
	})

	// --- 用户与认证模块 ---
	user := v1.Group("/user")
	{
		user.POST("/register", authHandler.Register)
		user.POST("/login", authHandler.Login)
		user.POST("/refresh-token", authHandler.Refresh)

		userAuth := user.Group("", middleware.AuthRequired())
		{
			userAuth.POST("/logout", authHandler.Logout)
			userAuth.GET("/current-user", authHandler.GetCurrentUser)
			userAuth.POST("/change-password", authHandler.ChangePassword)
			userAuth.PATCH("/update-account", authHandler.UpdateAccount)
			userAuth.PATCH("/avatar", authHandler.UpdateAvatar)
			userAuth.PATCH("/cover-image", authHandler.UpdateCoverImage)
			userAuth.GET("/c/:userName", userHandler.GetChannelProfile)
			userAuth.GET("/history", userHandler.GetWatchHistory)
		}
	}

	// --- 视频模块 ---
	video := v1.Group("/video")
	{
		// 公开接口带可选认证：作者本人可见未发布视频并记录观看历史
		video.GET("", middleware.AuthOptional(), videoHandler.List)
		video.GET("/:videoId", middleware.AuthOptional(), videoHandler.GetByID)

		videoAuth := video.Group("", middleware.AuthRequired())
		{
			videoAuth.POST("", videoHandler.Publish)
			videoAuth.PATCH("/:videoId", videoHandler.Update)
			videoAuth.DELETE("/:videoId", videoHandler.Delete)
			videoAuth.PATCH("/toggle/publish/:videoId", videoHandler.TogglePublish)
			videoAuth.POST("/:videoId/like", likeHandler.ToggleVideoLike)
		}
	}

	// --- 评论模块 ---
	comment := v1.Group("/comment")
	{
		comment.GET("/:videoId", commentHandler.ListByVideo)

		commentAuth := comment.Group("", middleware.AuthRequired())
		{
			commentAuth.POST("/:videoId", commentHandler.Create)
			commentAuth.PATCH("/c/:commentId", commentHandler.Update)
			commentAuth.DELETE("/c/:commentId", commentHandler.Delete)
			commentAuth.POST("/c/:commentId/like", likeHandler.ToggleCommentLike)
		}
	}

	// --- 点赞模块 ---
	like := v1.Group("/like", middleware.AuthRequired())
	{
		like.GET("/videos", likeHandler.GetLikedVideos)
	}

	// --- 播放列表模块 ---
	playlist := v1.Group("/playlist")
	{
		playlist.GET("/:playlistId", playlistHandler.GetByID)
		playlist.GET("/user/:userId", playlistHandler.ListByUser)

		playlistAuth := playlist.Group("", middleware.AuthRequired())
		{
			playlistAuth.POST("", playlistHandler.Create)
			playlistAuth.PATCH("/:playlistId", playlistHandler.Update)
			playlistAuth.DELETE("/:playlistId", playlistHandler.Delete)
			playlistAuth.PATCH("/add/:videoId/:playlistId", playlistHandler.AddVideo)
			playlistAuth.PATCH("/remove/:videoId/:playlistId", playlistHandler.RemoveVideo)
		}
	}

	// --- 订阅模块 ---
	subscription := v1.Group("/subscription", middleware.AuthRequired())
	{
		subscription.POST("/c/:channelId", subscriptionHandler.Toggle)
		subscription.GET("/c/:channelId", subscriptionHandler.GetSubscribers)
		subscription.GET("/u", subscriptionHandler.GetSubscribedChannels)
	}

	// --- 动态模块 ---
	tweet := v1.Group("/tweet")
	{
		tweet.GET("/user/:userId", tweetHandler.ListByUser)

		tweetAuth := tweet.Group("", middleware.AuthRequired())
		{
			tweetAuth.POST("", tweetHandler.Create)
			tweetAuth.PATCH("/:tweetId", tweetHandler.Update)
			tweetAuth.DELETE("/:tweetId", tweetHandler.Delete)
			tweetAuth.POST("/:tweetId/like", likeHandler.ToggleTweetLike)
		}
	}

	// --- 创作者面板模块 ---
	dashboard := v1.Group("/dashboard", middleware.AuthRequired())
	{
		dashboard.GET("/stats", dashboardHandler.GetStats)
		dashboard.GET("/videos", dashboardHandler.GetVideos)
	}

	// --- 搜索模块 ---
	search := v1.Group("/search")
	{
		search.GET("/video", searchHandler.SearchVideos)
	}
}
