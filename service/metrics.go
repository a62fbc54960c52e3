package service

import (
	"github.com/BerniceZTT/sales_dashboard/models"
)

// SafeRatio 分母为0时返回未定义，不产生 NaN
func SafeRatio(numerator, denominator float64) models.Ratio {
	if denominator == 0 {
		return models.UndefinedRatio()
	}
	return models.DefinedRatio(numerator / denominator)
}

// Sign 差异≥0为正，<0为负
func Sign(delta float64) models.DeltaSign {
	if delta < 0 {
		return models.DeltaNegative
	}
	return models.DeltaPositive
}

// CompareWithTeam 计算每行相对团队平均的差异
func CompareWithTeam(reps []models.RepresentativeSummary, team models.TeamAverage) []models.ComparisonRow {
	rows := make([]models.ComparisonRow, 0, len(reps))
	for _, rep := range reps {
		revenueDelta := rep.Revenue - team.Revenue
		attainmentDelta := rep.Attainment - team.Attainment
		satisfactionDelta := rep.Satisfaction - team.Satisfaction
		rows = append(rows, models.ComparisonRow{
			Representative:    rep,
			RevenueDelta:      revenueDelta,
			RevenueSign:       Sign(float64(revenueDelta)),
			AttainmentDelta:   attainmentDelta,
			AttainmentSign:    Sign(attainmentDelta),
			SatisfactionDelta: satisfactionDelta,
			SatisfactionSign:  Sign(satisfactionDelta),
		})
	}
	return rows
}

// SummarizeCompany 由原始计数计算完成度与转化率
func SummarizeCompany(kpi models.CompanyKPI) models.CompanySummary {
	return models.CompanySummary{
		Revenue:        kpi.Revenue,
		Target:         kpi.Target,
		Attainment:     SafeRatio(float64(kpi.Revenue), float64(kpi.Target)),
		Growth:         kpi.Growth,
		ActiveDeals:    kpi.ActiveDeals,
		ClosedDeals:    kpi.ClosedDeals,
		ConversionRate: SafeRatio(float64(kpi.ClosedDeals), float64(kpi.ActiveDeals+kpi.ClosedDeals)),
	}
}

// PipelineConversion 个人商机成交占比
func PipelineConversion(p models.Pipeline) models.Ratio {
	return SafeRatio(float64(p.Closed), float64(p.Open+p.Closed))
}

// RegionRows 地区数据附带完成度
func RegionRows(regions []models.RegionAggregate) []models.RegionRow {
	rows := make([]models.RegionRow, 0, len(regions))
	for _, r := range regions {
		rows = append(rows, models.RegionRow{
			RegionAggregate: r,
			Attainment:      SafeRatio(float64(r.Value), float64(r.Target)),
		})
	}
	return rows
}

// FunnelRows 漏斗各阶段相对首阶段与上一阶段的转化率
func FunnelRows(stages []models.FunnelStage) []models.FunnelRow {
	rows := make([]models.FunnelRow, 0, len(stages))
	for i, stage := range stages {
		row := models.FunnelRow{
			FunnelStage:  stage,
			FromTop:      SafeRatio(float64(stage.Value), float64(stages[0].Value)),
			FromPrevious: models.UndefinedRatio(),
		}
		if i > 0 {
			row.FromPrevious = SafeRatio(float64(stage.Value), float64(stages[i-1].Value))
		}
		rows = append(rows, row)
	}
	return rows
}
