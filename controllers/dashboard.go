package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/sales_dashboard/models"
	"github.com/BerniceZTT/sales_dashboard/service"
	"github.com/BerniceZTT/sales_dashboard/utils"
)

// DashboardController 看板接口
type DashboardController struct {
	session *service.Session
	catalog service.CatalogReader
	metrics *utils.Metrics
}

// NewDashboardController 创建看板控制器
func NewDashboardController(catalog service.CatalogReader, metrics *utils.Metrics) *DashboardController {
	return &DashboardController{
		session: service.NewSession(catalog),
		catalog: catalog,
		metrics: metrics,
	}
}

// 请求结构
type (
	// ValueRequest 设置筛选值或时间周期
	ValueRequest struct {
		Value string `json:"value" binding:"required"`
	}

	// SelectionRequest 选中销售人员，name 为 null 表示取消选中
	SelectionRequest struct {
		Name *string `json:"name"`
	}

	// RegionClickRequest 点击地区柱状图
	RegionClickRequest struct {
		Region string `json:"region" binding:"required"`
	}
)

// GetOverview 获取公司KPI、地区对比与漏斗
func (d *DashboardController) GetOverview(c *gin.Context) {
	utils.SuccessResponse(c, d.session.Overview(), "")
}

// GetFilterOptions 获取筛选下拉选项
func (d *DashboardController) GetFilterOptions(c *gin.Context) {
	utils.SuccessResponse(c, d.session.FilterOptions(), "")
}

// GetView 获取当前筛选状态下的看板数据
func (d *DashboardController) GetView(c *gin.Context) {
	utils.SuccessResponse(c, d.session.Snapshot(), "")
}

// GetRepresentative 按姓名查询销售人员汇总与详情
func (d *DashboardController) GetRepresentative(c *gin.Context) {
	name := c.Param("name")
	if _, ok := d.catalog.GetRepresentative(name); !ok {
		utils.HandleError(c, utils.CreateNotFoundError("销售人员"))
		return
	}
	utils.SuccessResponse(c, service.ResolveRepresentative(d.catalog, name), "")
}

// PostEvent 应用任意看板事件
func (d *DashboardController) PostEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据: "+err.Error()))
		return
	}
	d.dispatch(c, event)
}

// PutFilter 设置某个维度的筛选
func (d *DashboardController) PutFilter(c *gin.Context) {
	dimension := models.FilterDimension(c.Param("dimension"))
	if !dimension.Valid() {
		utils.HandleError(c, utils.CreateBadRequestError("未知筛选维度: "+string(dimension)))
		return
	}

	var req ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("筛选值不能为空"))
		return
	}
	d.dispatch(c, models.SetFilterEvent(dimension, req.Value))
}

// PutPeriod 设置时间周期
func (d *DashboardController) PutPeriod(c *gin.Context) {
	var req ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("时间周期不能为空"))
		return
	}
	d.dispatch(c, models.SetPeriodEvent(req.Value))
}

// PutSelection 选中或取消选中销售人员
func (d *DashboardController) PutSelection(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("无效的请求数据"))
		return
	}
	if req.Name == nil {
		d.dispatch(c, models.DeselectRepresentativeEvent())
		return
	}
	d.dispatch(c, models.SelectRepresentativeEvent(*req.Name))
}

// PostRegionClick 点击地区柱状图筛选
func (d *DashboardController) PostRegionClick(c *gin.Context) {
	var req RegionClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("地区不能为空"))
		return
	}
	d.dispatch(c, models.RegionClickedEvent(req.Region))
}

// PostClear 清空筛选
func (d *DashboardController) PostClear(c *gin.Context) {
	d.dispatch(c, models.ClearFiltersEvent())
}

func (d *DashboardController) dispatch(c *gin.Context, event models.Event) {
	snapshot, err := d.session.Dispatch(event)
	if err != nil {
		d.metrics.Events.WithLabelValues(string(event.Type), "rejected").Inc()
		// 由 ErrorHandler 映射为响应
		_ = c.Error(err)
		return
	}

	d.metrics.Events.WithLabelValues(string(event.Type), "applied").Inc()
	d.metrics.FilteredRows.Set(float64(len(snapshot.Representatives)))
	utils.SuccessResponse(c, snapshot, "看板已更新")
}
