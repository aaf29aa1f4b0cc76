package router

import (
	"github.com/cornerstone/internal/config"
	"github.com/cornerstone/internal/handler"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter 配置 Gin 引擎和路由。
// 登录/登出始终可达；其余管理 API 需要有效会话，后台页面未登录时重定向
// 到登录页；公开接口不设拦截。
func SetupRouter(gdb *gorm.DB, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	api := handler.NewAPI(gdb, cfg)

	// 公开接口
	r.GET("/api/portfolio", api.GetPortfolio)
	r.POST("/api/contact", api.SubmitContact)

	// 后台页面（呈现层只是占位，真正的界面由前端仓库提供）
	r.GET("/admin", func(c *gin.Context) {
		c.File("web/admin.html")
	})
	dashboard := r.Group("/admin/dashboard")
	dashboard.Use(api.RequireAdminPage())
	{
		dashboard.GET("", func(c *gin.Context) {
			c.File("web/dashboard.html")
		})
	}

	// 管理 API
	admin := r.Group("/api/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(api.RequireAdminAPI())
		{
			auth.GET("/posts", api.GetPosts)
			auth.POST("/posts", api.CreatePost)
			auth.PATCH("/posts/:id", api.UpdatePost)
			auth.DELETE("/posts/:id", api.DeletePost)

			auth.POST("/cloudinary-signature", api.CloudinarySignature)
			auth.POST("/uploads", api.UploadImage)

			auth.GET("/media", api.GetMedia)
			auth.POST("/media", api.CreateMedia)
		}
	}

	return r
}
