package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BerniceZTT/sales_dashboard/controllers"
	"github.com/BerniceZTT/sales_dashboard/middleware"
	"github.com/BerniceZTT/sales_dashboard/utils"
)

// Handlers 路由依赖的控制器
type Handlers struct {
	Dashboard *controllers.DashboardController
	System    *controllers.SystemController
	Gatherer  prometheus.Gatherer
}

// NewRouter 创建Gin实例并应用中间件
func NewRouter(corsOrigins []string, metrics *utils.Metrics, h Handlers) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(corsOrigins))
	router.Use(middleware.Metrics(metrics))
	router.Use(middleware.ErrorHandler())

	RegisterRoutes(router, h)
	return router
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine, h Handlers) {
	RegisterDashboardRoutes(router, h.Dashboard)

	// 健康检查路由
	router.GET("/api/health", h.System.Health)

	// 数据源状态检查路由
	router.GET("/api/db-status", h.System.GetDatabaseStatus)

	// 指标
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{})))
}
