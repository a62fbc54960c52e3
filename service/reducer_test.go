package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerniceZTT/sales_dashboard/models"
)

func strPtr(s string) *string { return &s }

func TestApplyEvent(t *testing.T) {
	initial := models.InitialViewState()

	tests := []struct {
		name  string
		state models.ViewState
		event models.Event
		want  models.ViewState
	}{
		{
			name:  "set region",
			state: initial,
			event: models.SetFilterEvent(models.DimensionRegion, "华东"),
			want: models.ViewState{
				SelectedRegion: "华东", SelectedSegment: models.AllValue,
				SelectedProductLine: models.AllValue, SelectedPeriod: models.AllValue,
			},
		},
		{
			name:  "set segment",
			state: initial,
			event: models.SetFilterEvent(models.DimensionSegment, "企业客户"),
			want: models.ViewState{
				SelectedRegion: models.AllValue, SelectedSegment: "企业客户",
				SelectedProductLine: models.AllValue, SelectedPeriod: models.AllValue,
			},
		},
		{
			name:  "set product line",
			state: initial,
			event: models.SetFilterEvent(models.DimensionProductLine, "硬件"),
			want: models.ViewState{
				SelectedRegion: models.AllValue, SelectedSegment: models.AllValue,
				SelectedProductLine: "硬件", SelectedPeriod: models.AllValue,
			},
		},
		{
			name:  "set filter back to all",
			state: models.ViewState{SelectedRegion: "华北", SelectedSegment: models.AllValue, SelectedProductLine: models.AllValue, SelectedPeriod: models.AllValue},
			event: models.SetFilterEvent(models.DimensionRegion, models.AllValue),
			want:  initial,
		},
		{
			name:  "value outside catalog is accepted",
			state: initial,
			event: models.SetFilterEvent(models.DimensionRegion, "火星"),
			want: models.ViewState{
				SelectedRegion: "火星", SelectedSegment: models.AllValue,
				SelectedProductLine: models.AllValue, SelectedPeriod: models.AllValue,
			},
		},
		{
			name:  "set period",
			state: initial,
			event: models.SetPeriodEvent("本月"),
			want: models.ViewState{
				SelectedRegion: models.AllValue, SelectedSegment: models.AllValue,
				SelectedProductLine: models.AllValue, SelectedPeriod: "本月",
			},
		},
		{
			name:  "select representative",
			state: initial,
			event: models.SelectRepresentativeEvent("张伟"),
			want: models.ViewState{
				SelectedRegion: models.AllValue, SelectedSegment: models.AllValue,
				SelectedProductLine: models.AllValue, SelectedPeriod: models.AllValue,
				SelectedRepresentative: strPtr("张伟"),
			},
		},
		{
			name: "deselect representative",
			state: models.ViewState{
				SelectedRegion: "华北", SelectedSegment: models.AllValue,
				SelectedProductLine: models.AllValue, SelectedPeriod: models.AllValue,
				SelectedRepresentative: strPtr("张伟"),
			},
			event: models.DeselectRepresentativeEvent(),
			want: models.ViewState{
				SelectedRegion: "华北", SelectedSegment: models.AllValue,
				SelectedProductLine: models.AllValue, SelectedPeriod: models.AllValue,
			},
		},
		{
			name: "clear filters resets everything",
			state: models.ViewState{
				SelectedRegion: "华北", SelectedSegment: "企业客户",
				SelectedProductLine: "硬件", SelectedPeriod: "本周",
				SelectedRepresentative: strPtr("张伟"),
			},
			event: models.ClearFiltersEvent(),
			want:  initial,
		},
		{
			name:  "region click sets region filter",
			state: initial,
			event: models.RegionClickedEvent("华南"),
			want: models.ViewState{
				SelectedRegion: "华南", SelectedSegment: models.AllValue,
				SelectedProductLine: models.AllValue, SelectedPeriod: models.AllValue,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyEvent(tt.state, tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyEventRejectsInvalidEvents(t *testing.T) {
	state := models.ViewState{
		SelectedRegion: "华北", SelectedSegment: models.AllValue,
		SelectedProductLine: models.AllValue, SelectedPeriod: "本月",
	}

	tests := []struct {
		name  string
		event models.Event
	}{
		{"unknown type", models.Event{Type: "zoom"}},
		{"unknown dimension", models.SetFilterEvent("period", "本月")},
		{"empty filter value", models.SetFilterEvent(models.DimensionSegment, "")},
		{"empty region click", models.RegionClickedEvent("")},
		{"empty period", models.SetPeriodEvent("")},
		{"empty representative name", models.SelectRepresentativeEvent("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyEvent(state, tt.event)
			assert.ErrorIs(t, err, ErrInvalidEvent)
			assert.Equal(t, state, got)
		})
	}
}

func TestRegionClickEquivalentToSetFilter(t *testing.T) {
	start := models.ViewState{
		SelectedRegion: "华北", SelectedSegment: "中小客户",
		SelectedProductLine: models.AllValue, SelectedPeriod: "本年度",
		SelectedRepresentative: strPtr("王强"),
	}

	for _, region := range []string{"华南", "华东", models.AllValue} {
		clicked, err := ApplyEvent(start, models.RegionClickedEvent(region))
		require.NoError(t, err)
		filtered, err := ApplyEvent(start, models.SetFilterEvent(models.DimensionRegion, region))
		require.NoError(t, err)
		assert.Equal(t, filtered, clicked, region)
	}
}

func TestApplyEventDoesNotAliasSelection(t *testing.T) {
	name := "张伟"
	state, err := ApplyEvent(models.InitialViewState(), models.Event{Type: models.EventSelectRepresentative, Name: &name})
	require.NoError(t, err)

	name = "李敏"
	selected, ok := state.Selected()
	require.True(t, ok)
	assert.Equal(t, "张伟", selected)
}
