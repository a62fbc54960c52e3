package models

import "encoding/json"

// Ratio 派生比率，分母为0时为未定义
type Ratio struct {
	Value   float64
	Defined bool
}

// DefinedRatio 构造已定义的比率
func DefinedRatio(v float64) Ratio {
	return Ratio{Value: v, Defined: true}
}

// UndefinedRatio 分母为0时的未定义标记
func UndefinedRatio() Ratio {
	return Ratio{}
}

// MarshalJSON 未定义时输出 null，前端显示占位符
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON 解析 null 为未定义
func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = UndefinedRatio()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = DefinedRatio(v)
	return nil
}

// DeltaSign 差异方向
type DeltaSign string

const (
	DeltaPositive DeltaSign = "positive"
	DeltaNegative DeltaSign = "negative"
)

// ComparisonRow 个人 vs 团队平均对比
type ComparisonRow struct {
	Representative    RepresentativeSummary `json:"representative"`
	RevenueDelta      int64                 `json:"revenueDelta"`
	RevenueSign       DeltaSign             `json:"revenueSign"`
	AttainmentDelta   float64               `json:"attainmentDelta"`
	AttainmentSign    DeltaSign             `json:"attainmentSign"`
	SatisfactionDelta float64               `json:"satisfactionDelta"`
	SatisfactionSign  DeltaSign             `json:"satisfactionSign"`
}

// CompanySummary 公司KPI卡片数据
type CompanySummary struct {
	Revenue        int64   `json:"revenue"`
	Target         int64   `json:"target"`
	Attainment     Ratio   `json:"attainment"`
	Growth         float64 `json:"growth"`
	ActiveDeals    int     `json:"activeDeals"`
	ClosedDeals    int     `json:"closedDeals"`
	ConversionRate Ratio   `json:"conversionRate"`
}

// DetailStatus 详情查找结果
type DetailStatus string

const (
	DetailPresent DetailStatus = "present"
	DetailAbsent  DetailStatus = "absent"
)

// RepresentativeView 选中销售人员的个人主页
type RepresentativeView struct {
	Name               string                `json:"name"`
	Summary            RepresentativeSummary `json:"summary"`
	PipelineConversion Ratio                 `json:"pipelineConversion"`
	DetailStatus       DetailStatus          `json:"detailStatus"`
	Detail             RepresentativeDetail  `json:"detail"`
}

// RegionRow 地区对比图数据
type RegionRow struct {
	RegionAggregate
	Attainment Ratio `json:"attainment"`
}

// FunnelRow 漏斗阶段及转化率
type FunnelRow struct {
	FunnelStage
	FromTop      Ratio `json:"fromTop"`      // 相对首阶段
	FromPrevious Ratio `json:"fromPrevious"` // 相对上一阶段
}

// Overview 看板总览
type Overview struct {
	Company     CompanySummary `json:"company"`
	Regions     []RegionRow    `json:"regions"`
	Funnel      []FunnelRow    `json:"funnel"`
	TeamAverage TeamAverage    `json:"teamAverage"`
}

// FilterOption 下拉选项
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptions 各维度的下拉选项
type FilterOptions struct {
	Regions      []FilterOption `json:"regions"`
	Segments     []FilterOption `json:"segments"`
	ProductLines []FilterOption `json:"productLines"`
	Periods      []FilterOption `json:"periods"`
}

// Snapshot 当前状态下看板的全部派生数据
type Snapshot struct {
	State           ViewState               `json:"state"`
	Representatives []RepresentativeSummary `json:"representatives"`
	Comparison      []ComparisonRow         `json:"comparison"`
	Company         CompanySummary          `json:"company"`
	Active          *RepresentativeView     `json:"active"`
}
