package route

import (
	"github.com/gin-gonic/gin"

	"restro/auth"
	"restro/controller"
	"restro/utils"
)

func RestroRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.Use(utils.RateLimitMiddleware())
	{
		api.GET("/menu", controller.GetMenuList)
		api.POST("/booking", controller.PostNewBooking)
		api.GET("/order", controller.GetAllOrders)
		api.PUT("/order/:orderId", controller.PutOrderStatus)
		api.GET("/table", controller.GetAllTables)
		api.POST("/table", controller.PostCreateTable)
		api.PUT("/table/:slotId", controller.PutTableDetails)
		api.DELETE("/table/:slotId", controller.DeleteTable)
	}

	admin := router.Group("/api/admin")
	admin.Use(utils.ManagerMiddleware())
	{
		admin.GET("/chef", controller.GetChefList)
		admin.POST("/chef", controller.PostChef)
		admin.DELETE("/chef/:chefId", controller.DeleteChef)
		admin.GET("/dashboard", controller.GetDashboardAnalytics)
		admin.GET("/dashboard/export", controller.ExportDashboardReport)
		admin.DELETE("/menu/:id", controller.DeleteMenuItem)
		admin.DELETE("/category/:id", controller.DeleteCategory)
	}

	router.POST("/api/auth/login", auth.Login)
	router.POST("/api/auth/register", auth.Register)
	router.POST("/api/auth/refresh", auth.Refresh)
	router.GET("/api/auth/logout", utils.ManagerMiddleware(), auth.Logout)
}
