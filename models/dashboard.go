package models

// CompanyKPI 公司整体KPI
// 完成度与转化率不存储，由 revenue/target 与 closedDeals/(activeDeals+closedDeals) 计算得出
type CompanyKPI struct {
	Revenue     int64   `json:"revenue" bson:"revenue" yaml:"revenue"`             // 公司总营收
	Target      int64   `json:"target" bson:"target" yaml:"target"`                // 目标营收
	Growth      float64 `json:"growth" bson:"growth" yaml:"growth"`                // 增长率
	ActiveDeals int     `json:"activeDeals" bson:"activeDeals" yaml:"activeDeals"` // 活跃商机
	ClosedDeals int     `json:"closedDeals" bson:"closedDeals" yaml:"closedDeals"` // 已成交
}

// RegionAggregate 地区汇总数据
type RegionAggregate struct {
	Region    string  `json:"region" bson:"region" yaml:"region"`          // 地区
	Value     int64   `json:"value" bson:"value" yaml:"value"`             // 营收
	Target    int64   `json:"target" bson:"target" yaml:"target"`          // 目标
	Growth    float64 `json:"growth" bson:"growth" yaml:"growth"`          // 增长率
	TeamCount int     `json:"teamCount" bson:"teamCount" yaml:"teamCount"` // 团队数量
}

// TeamAverage 团队平均基线，仅用于计算个人差异
type TeamAverage struct {
	Revenue       int64   `json:"revenue" bson:"revenue" yaml:"revenue"`
	Attainment    float64 `json:"attainment" bson:"attainment" yaml:"attainment"`
	CustomerCount int     `json:"customerCount" bson:"customerCount" yaml:"customerCount"`
	Satisfaction  float64 `json:"satisfaction" bson:"satisfaction" yaml:"satisfaction"`
}

// Pipeline 个人商机管道
type Pipeline struct {
	Open   int `json:"open" bson:"open" yaml:"open"`       // 开放商机
	Closed int `json:"closed" bson:"closed" yaml:"closed"` // 已成交
}

// RepresentativeSummary 销售人员业绩汇总
type RepresentativeSummary struct {
	Name          string   `json:"name" bson:"name" yaml:"name"`                            // 销售人员
	Region        string   `json:"region" bson:"region" yaml:"region"`                      // 地区
	Segment       string   `json:"segment" bson:"segment" yaml:"segment"`                   // 客户分层
	ProductLine   string   `json:"productLine" bson:"productLine" yaml:"productLine"`       // 产品线
	Revenue       int64    `json:"revenue" bson:"revenue" yaml:"revenue"`                   // 销售额
	Attainment    float64  `json:"attainment" bson:"attainment" yaml:"attainment"`          // 达成率
	CustomerCount int      `json:"customerCount" bson:"customerCount" yaml:"customerCount"` // 客户数
	NewContracts  int      `json:"newContracts" bson:"newContracts" yaml:"newContracts"`    // 新签合同数
	Pipeline      Pipeline `json:"pipeline" bson:"pipeline" yaml:"pipeline"`                // 商机管道
	Satisfaction  float64  `json:"satisfaction" bson:"satisfaction" yaml:"satisfaction"`    // 客户满意度
}

// TrendPoint 销售趋势点
type TrendPoint struct {
	Month string `json:"month" bson:"month" yaml:"month"`
	Value int64  `json:"value" bson:"value" yaml:"value"`
}

// RepresentativeDetail 销售人员主页数据
type RepresentativeDetail struct {
	Activities []string     `json:"activities" bson:"activities" yaml:"activities"` // 近期活动
	Contracts  []string     `json:"contracts" bson:"contracts" yaml:"contracts"`    // 合同列表
	Trend      []TrendPoint `json:"trend" bson:"trend" yaml:"trend"`                // 销售趋势
	Accounts   []string     `json:"accounts" bson:"accounts" yaml:"accounts"`       // 主要客户
}

// EmptyRepresentativeDetail 返回统一的空详情，所有序列均为非nil空切片
func EmptyRepresentativeDetail() RepresentativeDetail {
	return RepresentativeDetail{
		Activities: []string{},
		Contracts:  []string{},
		Trend:      []TrendPoint{},
		Accounts:   []string{},
	}
}

// FunnelStage 商机漏斗阶段
type FunnelStage struct {
	Name  string `json:"name" bson:"name" yaml:"name"`
	Value int    `json:"value" bson:"value" yaml:"value"`
}

// CatalogData 看板数据源的原始内容
type CatalogData struct {
	CompanyKPI      CompanyKPI                      `json:"companyKpi" yaml:"companyKpi"`
	Regions         []RegionAggregate               `json:"regions" yaml:"regions"`
	TeamAverage     TeamAverage                     `json:"teamAverage" yaml:"teamAverage"`
	Representatives []RepresentativeSummary         `json:"representatives" yaml:"representatives"`
	Details         map[string]RepresentativeDetail `json:"details" yaml:"details"`
	Funnel          []FunnelStage                   `json:"funnel" yaml:"funnel"`
	Periods         []string                        `json:"periods" yaml:"periods"`
}

// Normalized 返回副本，nil 序列替换为空切片
func (d RepresentativeDetail) Normalized() RepresentativeDetail {
	out := EmptyRepresentativeDetail()
	out.Activities = append(out.Activities, d.Activities...)
	out.Contracts = append(out.Contracts, d.Contracts...)
	out.Trend = append(out.Trend, d.Trend...)
	out.Accounts = append(out.Accounts, d.Accounts...)
	return out
}
