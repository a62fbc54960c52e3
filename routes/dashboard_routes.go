package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/sales_dashboard/controllers"
)

// RegisterDashboardRoutes 注册看板相关路由
func RegisterDashboardRoutes(router *gin.Engine, dashboard *controllers.DashboardController) {
	group := router.Group("/api/dashboard")

	group.GET("/overview", dashboard.GetOverview)
	group.GET("/filters", dashboard.GetFilterOptions)
	group.GET("/view", dashboard.GetView)
	group.GET("/representatives/:name", dashboard.GetRepresentative)

	// 状态变更，均返回最新快照
	group.POST("/events", dashboard.PostEvent)
	group.PUT("/filters/:dimension", dashboard.PutFilter)
	group.PUT("/period", dashboard.PutPeriod)
	group.PUT("/selection", dashboard.PutSelection)
	group.POST("/region-click", dashboard.PostRegionClick)
	group.POST("/clear", dashboard.PostClear)
}
