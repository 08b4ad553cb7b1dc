package api

import (
	"ArcadeFlow/internal/service"
	"ArcadeFlow/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminAuth 管理后台的 basic auth；Username 为空时不鉴权
type AdminAuth struct {
	Username string
	Password string
}

// RegisterRoutes 注册前台 /api 与后台 /api/admin 路由
func RegisterRoutes(r *gin.Engine, svc *service.Services, sessions *session.Service, admin AdminAuth, logger *logrus.Logger) {
	gameHandler := NewGameHandler(svc, logger)
	ratingHandler := NewRatingHandler(svc, logger)
	commentHandler := NewCommentHandler(svc, logger)
	contentHandler := NewContentHandler(svc, logger)
	adHandler := NewAdHandler(svc, logger)
	settingHandler := NewSettingHandler(svc, logger)
	sessionHandler := NewSessionHandler(sessions, logger)

	r.GET("/ads.txt", adHandler.AdsTxt)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/session", sessionHandler.Issue)
		apiGroup.GET("/session/:user_id", sessionHandler.Get)

		apiGroup.GET("/games", gameHandler.ListGames)
		apiGroup.GET("/games/:id", gameHandler.GetGame)
		apiGroup.GET("/categories", gameHandler.ListCategories)

		apiGroup.GET("/ratings/averages", ratingHandler.Averages)
		apiGroup.GET("/games/:id/ratings", ratingHandler.ListRatings)
		apiGroup.GET("/games/:id/ratings/:user_id", ratingHandler.GetUserRating)
		apiGroup.POST("/games/:id/ratings", ratingHandler.RateGame)

		apiGroup.GET("/games/:id/comments", commentHandler.ListComments)
		apiGroup.POST("/games/:id/comments", commentHandler.CreateComment)

		apiGroup.GET("/content/:type", contentHandler.GetByType)
		apiGroup.GET("/adsense", adHandler.Get)
		apiGroup.GET("/settings/website-name", settingHandler.GetWebsiteName)
	}

	adminGroup := apiGroup.Group("/admin")
	if admin.Username != "" {
		adminGroup.Use(gin.BasicAuth(gin.Accounts{admin.Username: admin.Password}))
	} else {
		logger.Warn("admin.username 未配置，管理接口不做鉴权")
	}
	{
		adminGroup.POST("/games", gameHandler.CreateGame)
		adminGroup.PUT("/games/:id", gameHandler.UpdateGame)
		adminGroup.DELETE("/games/:id", gameHandler.DeleteGame)
		adminGroup.DELETE("/games/:id/ratings", ratingHandler.DeleteRatings)
		adminGroup.DELETE("/games/:id/comments", commentHandler.DeleteComments)

		adminGroup.GET("/content", contentHandler.List)
		adminGroup.GET("/content/:id", contentHandler.Get)
		adminGroup.POST("/content", contentHandler.Create)
		adminGroup.PUT("/content/:id", contentHandler.Update)
		adminGroup.DELETE("/content/:id", contentHandler.Delete)

		adminGroup.PUT("/adsense", adHandler.Put)
		adminGroup.POST("/adsense/parse", adHandler.Parse)
		adminGroup.PUT("/adsense/text", adHandler.ApplyText)

		adminGroup.PUT("/settings/website-name", settingHandler.SetWebsiteName)
	}
}
