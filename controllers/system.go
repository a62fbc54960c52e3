package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/sales_dashboard/repository"
	"github.com/BerniceZTT/sales_dashboard/utils"
)

// DatabaseStatusProvider 可报告集合状态的存储
type DatabaseStatusProvider interface {
	GetDatabaseStatus(ctx context.Context) map[string]interface{}
}

// SystemController 健康检查与数据源状态
type SystemController struct {
	source  string
	catalog *repository.Catalog
	store   DatabaseStatusProvider
}

// NewSystemController store 为 nil 表示数据源不是MongoDB
func NewSystemController(source string, catalog *repository.Catalog, store DatabaseStatusProvider) *SystemController {
	return &SystemController{source: source, catalog: catalog, store: store}
}

// Health 健康检查
func (s *SystemController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetDatabaseStatus 数据源状态
func (s *SystemController) GetDatabaseStatus(c *gin.Context) {
	status := gin.H{
		"source":  s.source,
		"catalog": s.catalog.Stats(),
	}
	if s.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		status["mongodb"] = s.store.GetDatabaseStatus(ctx)
	}
	utils.SuccessResponse(c, status, "")
}
