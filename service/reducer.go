package service

import (
	"errors"
	"fmt"

	"github.com/BerniceZTT/sales_dashboard/models"
)

var (
	// ErrInvalidEvent 事件类型或参数不合法
	ErrInvalidEvent = errors.New("invalid event")
	// ErrUnknownRepresentative 选中的销售人员不存在
	ErrUnknownRepresentative = errors.New("unknown representative")
)

// ApplyEvent 根据事件计算新的状态；事件不合法时返回原状态和错误
func ApplyEvent(state models.ViewState, event models.Event) (models.ViewState, error) {
	switch event.Type {
	case models.EventSetFilter:
		return setFilter(state, event.Dimension, event.Value)

	case models.EventRegionClicked:
		// 点击柱状图与地区下拉框收敛到同一个状态变更
		return setFilter(state, models.DimensionRegion, event.Value)

	case models.EventSetPeriod:
		if event.Value == "" {
			return state, fmt.Errorf("%w: 时间周期不能为空", ErrInvalidEvent)
		}
		state.SelectedPeriod = event.Value
		return state, nil

	case models.EventSelectRepresentative:
		if event.Name == nil {
			state.SelectedRepresentative = nil
			return state, nil
		}
		if *event.Name == "" {
			return state, fmt.Errorf("%w: 销售人员姓名不能为空", ErrInvalidEvent)
		}
		name := *event.Name
		state.SelectedRepresentative = &name
		return state, nil

	case models.EventClearFilters:
		return models.InitialViewState(), nil
	}

	return state, fmt.Errorf("%w: 未知事件类型 %q", ErrInvalidEvent, event.Type)
}

func setFilter(state models.ViewState, dimension models.FilterDimension, value string) (models.ViewState, error) {
	if value == "" {
		return state, fmt.Errorf("%w: 筛选值不能为空", ErrInvalidEvent)
	}
	switch dimension {
	case models.DimensionRegion:
		state.SelectedRegion = value
	case models.DimensionSegment:
		state.SelectedSegment = value
	case models.DimensionProductLine:
		state.SelectedProductLine = value
	default:
		return state, fmt.Errorf("%w: 未知筛选维度 %q", ErrInvalidEvent, dimension)
	}
	return state, nil
}
