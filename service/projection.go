package service

import (
	"fmt"

	"github.com/BerniceZTT/sales_dashboard/models"
)

// CatalogReader 投影引擎依赖的只读数据源
type CatalogReader interface {
	ListValues(dimension models.FilterDimension) []string
	ListPeriods() []string
	GetRepresentatives() []models.RepresentativeSummary
	GetRepresentative(name string) (models.RepresentativeSummary, bool)
	GetDetail(name string) (models.RepresentativeDetail, bool)
	GetFunnel() []models.FunnelStage
	GetRegionAggregates() []models.RegionAggregate
	GetCompanyKPI() models.CompanyKPI
	GetTeamAverage() models.TeamAverage
}

// Engine 看板状态与投影计算，非并发安全
type Engine struct {
	catalog CatalogReader
	state   models.ViewState
}

// NewEngine 创建处于初始状态的引擎
func NewEngine(catalog CatalogReader) *Engine {
	return &Engine{catalog: catalog, state: models.InitialViewState()}
}

// State 当前状态
func (e *Engine) State() models.ViewState {
	return e.state
}

// Dispatch 应用事件；选中不存在的销售人员时状态保持不变
func (e *Engine) Dispatch(event models.Event) error {
	if event.Type == models.EventSelectRepresentative && event.Name != nil && *event.Name != "" {
		if _, ok := e.catalog.GetRepresentative(*event.Name); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownRepresentative, *event.Name)
		}
	}

	next, err := ApplyEvent(e.state, event)
	if err != nil {
		return err
	}
	e.state = next
	return nil
}

// FilteredRepresentatives 当前筛选条件下的销售人员
func (e *Engine) FilteredRepresentatives() []models.RepresentativeSummary {
	return FilterRepresentatives(e.catalog.GetRepresentatives(), e.state)
}

// ComparisonRows 当前筛选结果与团队平均的对比
func (e *Engine) ComparisonRows() []models.ComparisonRow {
	return CompareWithTeam(e.FilteredRepresentatives(), e.catalog.GetTeamAverage())
}

// CompanySummary 公司KPI派生指标
func (e *Engine) CompanySummary() models.CompanySummary {
	return SummarizeCompany(e.catalog.GetCompanyKPI())
}

// ActiveDetail 选中销售人员的主页；未选中时返回 false
func (e *Engine) ActiveDetail() (models.RepresentativeView, bool) {
	name, ok := e.state.Selected()
	if !ok {
		return models.RepresentativeView{}, false
	}
	return ResolveRepresentative(e.catalog, name), true
}

// Snapshot 当前状态下的全部派生数据
func (e *Engine) Snapshot() models.Snapshot {
	filtered := e.FilteredRepresentatives()
	snapshot := models.Snapshot{
		State:           e.state,
		Representatives: filtered,
		Comparison:      CompareWithTeam(filtered, e.catalog.GetTeamAverage()),
		Company:         e.CompanySummary(),
	}
	if view, ok := e.ActiveDetail(); ok {
		snapshot.Active = &view
	}
	return snapshot
}

// Overview 公司KPI、地区与漏斗
func (e *Engine) Overview() models.Overview {
	return models.Overview{
		Company:     e.CompanySummary(),
		Regions:     RegionRows(e.catalog.GetRegionAggregates()),
		Funnel:      FunnelRows(e.catalog.GetFunnel()),
		TeamAverage: e.catalog.GetTeamAverage(),
	}
}

// FilterOptions 各下拉框选项，首项为"全部"
func (e *Engine) FilterOptions() models.FilterOptions {
	return models.FilterOptions{
		Regions:      dimensionOptions(models.DimensionRegion, e.catalog.ListValues(models.DimensionRegion)),
		Segments:     dimensionOptions(models.DimensionSegment, e.catalog.ListValues(models.DimensionSegment)),
		ProductLines: dimensionOptions(models.DimensionProductLine, e.catalog.ListValues(models.DimensionProductLine)),
		Periods:      withAll(models.PeriodAllLabel, e.catalog.ListPeriods()),
	}
}

func dimensionOptions(dimension models.FilterDimension, values []string) []models.FilterOption {
	return withAll(dimension.AllLabel(), values)
}

func withAll(allLabel string, values []string) []models.FilterOption {
	options := make([]models.FilterOption, 0, len(values)+1)
	options = append(options, models.FilterOption{Value: models.AllValue, Label: allLabel})
	for _, v := range values {
		options = append(options, models.FilterOption{Value: v, Label: v})
	}
	return options
}

// FilterRepresentatives 保留所有非"全部"维度均匹配的记录
func FilterRepresentatives(reps []models.RepresentativeSummary, state models.ViewState) []models.RepresentativeSummary {
	filtered := make([]models.RepresentativeSummary, 0, len(reps))
	for _, rep := range reps {
		if matches(state.SelectedRegion, rep.Region) &&
			matches(state.SelectedSegment, rep.Segment) &&
			matches(state.SelectedProductLine, rep.ProductLine) {
			filtered = append(filtered, rep)
		}
	}
	return filtered
}

func matches(filter, value string) bool {
	return filter == models.AllValue || filter == value
}

// ResolveRepresentative 关联汇总与详情两张表；详情缺失时返回统一的空详情
func ResolveRepresentative(catalog CatalogReader, name string) models.RepresentativeView {
	summary, _ := catalog.GetRepresentative(name)
	view := models.RepresentativeView{
		Name:               name,
		Summary:            summary,
		PipelineConversion: PipelineConversion(summary.Pipeline),
		DetailStatus:       models.DetailAbsent,
		Detail:             models.EmptyRepresentativeDetail(),
	}
	if detail, ok := catalog.GetDetail(name); ok {
		view.DetailStatus = models.DetailPresent
		view.Detail = detail.Normalized()
	}
	return view
}
