package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerniceZTT/sales_dashboard/models"
)

func loadBuiltin(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := LoadBuiltinCatalog()
	require.NoError(t, err)
	return catalog
}

func TestBuiltinCatalog(t *testing.T) {
	catalog := loadBuiltin(t)

	assert.Len(t, catalog.GetRepresentatives(), 5)
	assert.Len(t, catalog.GetRegionAggregates(), 5)
	assert.Len(t, catalog.GetFunnel(), 4)
	assert.Equal(t, []string{"本季度", "本月", "本周", "本年度"}, catalog.ListPeriods())

	kpi := catalog.GetCompanyKPI()
	assert.Equal(t, int64(6800000), kpi.Revenue)
	assert.Equal(t, int64(8000000), kpi.Target)
	assert.Equal(t, 45, kpi.ActiveDeals)
	assert.Equal(t, 28, kpi.ClosedDeals)

	team := catalog.GetTeamAverage()
	assert.Equal(t, int64(520000), team.Revenue)
	assert.InDelta(t, 0.78, team.Attainment, 1e-9)
	assert.Equal(t, 25, team.CustomerCount)
	assert.InDelta(t, 76, team.Satisfaction, 1e-9)
}

func TestListDistinctValuesInFirstSeenOrder(t *testing.T) {
	catalog := loadBuiltin(t)

	assert.Equal(t, []string{"华北", "华东", "华南", "西部", "中部"}, catalog.ListRegions())
	assert.Equal(t, []string{"企业客户", "中端客户", "中小客户"}, catalog.ListSegments())
	assert.Equal(t, []string{"硬件", "软件", "服务"}, catalog.ListProductLines())

	assert.Equal(t, catalog.ListRegions(), catalog.ListValues(models.DimensionRegion))
	assert.Equal(t, catalog.ListSegments(), catalog.ListValues(models.DimensionSegment))
	assert.Equal(t, catalog.ListProductLines(), catalog.ListValues(models.DimensionProductLine))
	assert.Empty(t, catalog.ListValues(models.FilterDimension("period")))
}

func TestGetDetail(t *testing.T) {
	catalog := loadBuiltin(t)

	detail, ok := catalog.GetDetail("张伟")
	require.True(t, ok)
	assert.Len(t, detail.Activities, 3)
	assert.Len(t, detail.Contracts, 2)
	assert.Len(t, detail.Accounts, 3)
	require.Len(t, detail.Trend, 4)
	assert.Equal(t, int64(200000), detail.Trend[3].Value)

	// 汇总中存在但没有详情
	_, ok = catalog.GetDetail("王强")
	assert.False(t, ok)

	_, ok = catalog.GetDetail("不存在的人")
	assert.False(t, ok)
}

func TestCatalogReturnsCopies(t *testing.T) {
	catalog := loadBuiltin(t)

	reps := catalog.GetRepresentatives()
	reps[0].Name = "被修改"
	assert.Equal(t, "张伟", catalog.GetRepresentatives()[0].Name)

	detail, ok := catalog.GetDetail("张伟")
	require.True(t, ok)
	detail.Activities[0] = "被修改"
	again, _ := catalog.GetDetail("张伟")
	assert.Equal(t, "拜访客户A", again.Activities[0])

	funnel := catalog.GetFunnel()
	funnel[0].Value = 0
	assert.Equal(t, 1200, catalog.GetFunnel()[0].Value)
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    models.CatalogData
		wantErr bool
	}{
		{
			name:    "empty catalog",
			data:    models.CatalogData{},
			wantErr: false,
		},
		{
			name: "duplicate representative",
			data: models.CatalogData{Representatives: []models.RepresentativeSummary{
				{Name: "张伟", Region: "华北"},
				{Name: "张伟", Region: "华东"},
			}},
			wantErr: true,
		},
		{
			name: "representative without name",
			data: models.CatalogData{Representatives: []models.RepresentativeSummary{
				{Region: "华北"},
			}},
			wantErr: true,
		},
		{
			name: "duplicate region aggregate",
			data: models.CatalogData{Regions: []models.RegionAggregate{
				{Region: "华北"},
				{Region: "华北"},
			}},
			wantErr: true,
		},
		{
			name: "detail without summary is tolerated",
			data: models.CatalogData{
				Representatives: []models.RepresentativeSummary{{Name: "张伟"}},
				Details: map[string]models.RepresentativeDetail{
					"孤立": {Activities: []string{"a"}},
				},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.data)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCatalog)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDetailSequencesNeverNil(t *testing.T) {
	catalog, err := NewCatalog(models.CatalogData{
		Representatives: []models.RepresentativeSummary{{Name: "赵六"}},
		Details: map[string]models.RepresentativeDetail{
			"赵六": {Activities: []string{"拜访"}},
		},
	})
	require.NoError(t, err)

	detail, ok := catalog.GetDetail("赵六")
	require.True(t, ok)
	assert.NotNil(t, detail.Contracts)
	assert.NotNil(t, detail.Trend)
	assert.NotNil(t, detail.Accounts)
	assert.Equal(t, []string{"拜访"}, detail.Activities)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
companyKpi:
  revenue: 100
  target: 200
  growth: 0.1
  activeDeals: 0
  closedDeals: 0
teamAverage:
  revenue: 50
  attainment: 0.5
  customerCount: 3
  satisfaction: 60
representatives:
  - { name: A, region: R1, segment: S1, productLine: P1, revenue: 60, attainment: 0.6, satisfaction: 70 }
  - { name: B, region: R2, segment: S1, productLine: P2, revenue: 40, attainment: 0.4, satisfaction: 50 }
details:
  A:
    activities: [x]
periods: [本月]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	catalog, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"R1", "R2"}, catalog.ListRegions())
	assert.Equal(t, []string{"S1"}, catalog.ListSegments())
	assert.Equal(t, []string{"本月"}, catalog.ListPeriods())

	_, ok := catalog.GetDetail("A")
	assert.True(t, ok)
	_, ok = catalog.GetDetail("B")
	assert.False(t, ok)
}

func TestLoadCatalogFileErrors(t *testing.T) {
	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("representatives: [: bad"), 0o600))
	_, err = LoadCatalogFile(path)
	assert.Error(t, err)
}

func TestCatalogDataRoundTrip(t *testing.T) {
	catalog := loadBuiltin(t)

	rebuilt, err := NewCatalog(catalog.Data())
	require.NoError(t, err)
	assert.Equal(t, catalog.GetRepresentatives(), rebuilt.GetRepresentatives())
	assert.Equal(t, catalog.ListPeriods(), rebuilt.ListPeriods())

	stats := rebuilt.Stats()
	assert.Equal(t, 5, stats[RepresentativesCollection])
	assert.Equal(t, 2, stats[DetailsCollection])
}
