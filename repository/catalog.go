package repository

import (
	"errors"
	"fmt"

	"github.com/BerniceZTT/sales_dashboard/models"
	"github.com/BerniceZTT/sales_dashboard/utils"
)

// ErrInvalidCatalog 数据源内容不合法
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog 看板只读数据目录，启动时构建一次，之后不再修改
type Catalog struct {
	company         models.CompanyKPI
	regions         []models.RegionAggregate
	teamAverage     models.TeamAverage
	representatives []models.RepresentativeSummary
	repIndex        map[string]int
	details         map[string]models.RepresentativeDetail
	funnel          []models.FunnelStage
	periods         []string
}

// NewCatalog 根据原始数据构建数据目录
func NewCatalog(data models.CatalogData) (*Catalog, error) {
	c := &Catalog{
		company:         data.CompanyKPI,
		regions:         append([]models.RegionAggregate(nil), data.Regions...),
		teamAverage:     data.TeamAverage,
		representatives: append([]models.RepresentativeSummary(nil), data.Representatives...),
		repIndex:        make(map[string]int, len(data.Representatives)),
		details:         make(map[string]models.RepresentativeDetail, len(data.Details)),
		funnel:          append([]models.FunnelStage(nil), data.Funnel...),
		periods:         append([]string(nil), data.Periods...),
	}

	for i, rep := range c.representatives {
		if rep.Name == "" {
			return nil, fmt.Errorf("%w: 第%d个销售人员缺少姓名", ErrInvalidCatalog, i+1)
		}
		if _, exists := c.repIndex[rep.Name]; exists {
			return nil, fmt.Errorf("%w: 销售人员重复: %s", ErrInvalidCatalog, rep.Name)
		}
		c.repIndex[rep.Name] = i
	}

	seenRegions := make(map[string]bool, len(c.regions))
	for i, region := range c.regions {
		if region.Region == "" {
			return nil, fmt.Errorf("%w: 第%d个地区缺少名称", ErrInvalidCatalog, i+1)
		}
		if seenRegions[region.Region] {
			return nil, fmt.Errorf("%w: 地区重复: %s", ErrInvalidCatalog, region.Region)
		}
		seenRegions[region.Region] = true
	}

	for name, detail := range data.Details {
		if _, ok := c.repIndex[name]; !ok {
			utils.Logger.Warn().Str("name", name).Msg("销售人员详情没有对应的汇总记录")
		}
		c.details[name] = detail.Normalized()
	}

	return c, nil
}

// ListRegions 汇总记录中出现的地区，按首次出现顺序
func (c *Catalog) ListRegions() []string {
	return c.distinct(func(r models.RepresentativeSummary) string { return r.Region })
}

// ListSegments 汇总记录中出现的客户分层
func (c *Catalog) ListSegments() []string {
	return c.distinct(func(r models.RepresentativeSummary) string { return r.Segment })
}

// ListProductLines 汇总记录中出现的产品线
func (c *Catalog) ListProductLines() []string {
	return c.distinct(func(r models.RepresentativeSummary) string { return r.ProductLine })
}

// ListValues 按维度返回可选值
func (c *Catalog) ListValues(dimension models.FilterDimension) []string {
	switch dimension {
	case models.DimensionRegion:
		return c.ListRegions()
	case models.DimensionSegment:
		return c.ListSegments()
	case models.DimensionProductLine:
		return c.ListProductLines()
	}
	return []string{}
}

// ListPeriods 数据源提供的时间周期选项
func (c *Catalog) ListPeriods() []string {
	return append([]string{}, c.periods...)
}

func (c *Catalog) distinct(field func(models.RepresentativeSummary) string) []string {
	seen := make(map[string]bool)
	values := []string{}
	for _, rep := range c.representatives {
		v := field(rep)
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// GetRepresentatives 全部销售人员汇总，保持原始顺序
func (c *Catalog) GetRepresentatives() []models.RepresentativeSummary {
	return append([]models.RepresentativeSummary{}, c.representatives...)
}

// GetRepresentative 按姓名查找汇总记录
func (c *Catalog) GetRepresentative(name string) (models.RepresentativeSummary, bool) {
	i, ok := c.repIndex[name]
	if !ok {
		return models.RepresentativeSummary{}, false
	}
	return c.representatives[i], true
}

// GetDetail 按姓名查找详情，不存在时返回 false
func (c *Catalog) GetDetail(name string) (models.RepresentativeDetail, bool) {
	d, ok := c.details[name]
	if !ok {
		return models.RepresentativeDetail{}, false
	}
	return d.Normalized(), true
}

// GetFunnel 商机漏斗
func (c *Catalog) GetFunnel() []models.FunnelStage {
	return append([]models.FunnelStage{}, c.funnel...)
}

// GetRegionAggregates 地区汇总
func (c *Catalog) GetRegionAggregates() []models.RegionAggregate {
	return append([]models.RegionAggregate{}, c.regions...)
}

// GetCompanyKPI 公司KPI
func (c *Catalog) GetCompanyKPI() models.CompanyKPI {
	return c.company
}

// GetTeamAverage 团队平均
func (c *Catalog) GetTeamAverage() models.TeamAverage {
	return c.teamAverage
}

// Data 导出原始数据，用于写入MongoDB
func (c *Catalog) Data() models.CatalogData {
	details := make(map[string]models.RepresentativeDetail, len(c.details))
	for name, d := range c.details {
		details[name] = d.Normalized()
	}
	return models.CatalogData{
		CompanyKPI:      c.company,
		Regions:         c.GetRegionAggregates(),
		TeamAverage:     c.teamAverage,
		Representatives: c.GetRepresentatives(),
		Details:         details,
		Funnel:          c.GetFunnel(),
		Periods:         c.ListPeriods(),
	}
}

// Stats 数据目录各集合的记录数
func (c *Catalog) Stats() map[string]int {
	return map[string]int{
		RepresentativesCollection: len(c.representatives),
		DetailsCollection:         len(c.details),
		RegionsCollection:         len(c.regions),
		FunnelCollection:          len(c.funnel),
		PeriodsCollection:         len(c.periods),
	}
}
