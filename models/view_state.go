package models

// AllValue 筛选条件"全部"的哨兵值
const AllValue = "all"

// FilterDimension 筛选维度
type FilterDimension string

const (
	DimensionRegion      FilterDimension = "region"      // 地区
	DimensionSegment     FilterDimension = "segment"     // 客户分层
	DimensionProductLine FilterDimension = "productLine" // 产品线
)

// Valid 判断维度是否受支持
func (d FilterDimension) Valid() bool {
	switch d {
	case DimensionRegion, DimensionSegment, DimensionProductLine:
		return true
	}
	return false
}

// AllLabel 各维度"全部"选项的显示名称
func (d FilterDimension) AllLabel() string {
	switch d {
	case DimensionRegion:
		return "全部地区"
	case DimensionSegment:
		return "全部分层"
	case DimensionProductLine:
		return "全部产品线"
	}
	return "全部"
}

// PeriodAllLabel 时间周期"全部"选项的显示名称
const PeriodAllLabel = "全部时间"

// ViewState 看板当前的筛选与选中状态
type ViewState struct {
	SelectedRegion         string  `json:"selectedRegion"`
	SelectedSegment        string  `json:"selectedSegment"`
	SelectedProductLine    string  `json:"selectedProductLine"`
	SelectedPeriod         string  `json:"selectedPeriod"`
	SelectedRepresentative *string `json:"selectedRepresentative"`
}

// InitialViewState 初始状态：所有筛选为"全部"，无选中人员
func InitialViewState() ViewState {
	return ViewState{
		SelectedRegion:      AllValue,
		SelectedSegment:     AllValue,
		SelectedProductLine: AllValue,
		SelectedPeriod:      AllValue,
	}
}

// Filter 返回指定维度当前的筛选值
func (s ViewState) Filter(dimension FilterDimension) string {
	switch dimension {
	case DimensionRegion:
		return s.SelectedRegion
	case DimensionSegment:
		return s.SelectedSegment
	case DimensionProductLine:
		return s.SelectedProductLine
	}
	return AllValue
}

// Selected 返回选中的销售人员
func (s ViewState) Selected() (string, bool) {
	if s.SelectedRepresentative == nil {
		return "", false
	}
	return *s.SelectedRepresentative, true
}

// EventType 看板事件类型
type EventType string

const (
	EventSetFilter            EventType = "set_filter"
	EventSetPeriod            EventType = "set_period"
	EventSelectRepresentative EventType = "select_representative"
	EventClearFilters         EventType = "clear_filters"
	EventRegionClicked        EventType = "region_clicked"
)

// Event 看板状态变更事件
type Event struct {
	Type      EventType       `json:"type" binding:"required,oneof=set_filter set_period select_representative clear_filters region_clicked"`
	Dimension FilterDimension `json:"dimension,omitempty"`
	Value     string          `json:"value,omitempty"`
	Name      *string         `json:"name,omitempty"`
}

// SetFilterEvent 设置某个维度的筛选
func SetFilterEvent(dimension FilterDimension, value string) Event {
	return Event{Type: EventSetFilter, Dimension: dimension, Value: value}
}

// SetPeriodEvent 设置时间周期
func SetPeriodEvent(value string) Event {
	return Event{Type: EventSetPeriod, Value: value}
}

// SelectRepresentativeEvent 选中销售人员
func SelectRepresentativeEvent(name string) Event {
	return Event{Type: EventSelectRepresentative, Name: &name}
}

// DeselectRepresentativeEvent 取消选中
func DeselectRepresentativeEvent() Event {
	return Event{Type: EventSelectRepresentative}
}

// ClearFiltersEvent 清空筛选
func ClearFiltersEvent() Event {
	return Event{Type: EventClearFilters}
}

// RegionClickedEvent 点击地区柱状图
func RegionClickedEvent(region string) Event {
	return Event{Type: EventRegionClicked, Value: region}
}
