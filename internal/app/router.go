package app

import (
	"ai_interviewer_backend/docs"
	"ai_interviewer_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 题目生成与题库
		api.POST("/questions/generate", c.question.Generate)
		api.POST("/questions", c.question.Create)
		api.GET("/questions", c.question.List)
		api.DELETE("/questions/:id", c.question.Delete)

		// 面试会话生命周期
		session := api.Group("/session")
		{
			session.POST("/create", c.session.Create)
			session.GET("/:id", c.session.Get)
			session.DELETE("/:id", c.session.Delete)
			session.POST("/:id/randomize", c.session.Randomize)
			session.POST("/:id/start", c.session.Start)
			session.POST("/:id/answer", c.session.Answer)
			session.GET("/:id/next", c.session.Next)
			session.POST("/:id/finish", c.session.Finish)
			session.POST("/:id/report", c.session.Report)
			session.GET("/:id/reports", c.session.Reports)
		}

		// 报告
		api.GET("/reports/:id", c.report.Get)
		api.POST("/reports/:id/export", c.report.Export)

		// 岗位与出题配置
		api.POST("/roles", c.role.CreateRole)
		api.GET("/roles", c.role.ListRoles)
		api.GET("/roles/:id", c.role.GetRole)
		api.DELETE("/roles/:id", c.role.DeleteRole)
		api.POST("/configs", c.role.CreateConfig)
		api.GET("/configs", c.role.ListConfigs)
		api.GET("/configs/:id", c.role.GetConfig)
		api.DELETE("/configs/:id", c.role.DeleteConfig)

		// 语音令牌
		api.GET("/speech/token", c.speech.Token)

		// D-ID 数字人信令代理
		api.POST("/stream/create", c.stream.Create)
		api.POST("/stream/:id/sdp", c.stream.SDP)
		api.POST("/stream/:id/ice", c.stream.ICE)
		api.POST("/stream/:id", c.stream.Send)
		api.DELETE("/stream/:id", c.stream.Delete)
		api.GET("/presenters", c.stream.Presenters)
	}
}
