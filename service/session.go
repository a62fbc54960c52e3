package service

import (
	"sync"

	"github.com/BerniceZTT/sales_dashboard/models"
	"github.com/BerniceZTT/sales_dashboard/utils"
)

// Session 为HTTP层串行化对同一个引擎的访问，保证每个事件处理完成后才处理下一个
type Session struct {
	mu     sync.RWMutex
	engine *Engine
}

// NewSession 创建会话
func NewSession(catalog CatalogReader) *Session {
	return &Session{engine: NewEngine(catalog)}
}

// Dispatch 应用事件并返回新的快照
func (s *Session) Dispatch(event models.Event) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.engine.Dispatch(event); err != nil {
		utils.Logger.Warn().Err(err).Str("type", string(event.Type)).Msg("看板事件被拒绝")
		return s.engine.Snapshot(), err
	}

	state := s.engine.State()
	utils.Logger.Info().
		Str("type", string(event.Type)).
		Str("region", state.SelectedRegion).
		Str("segment", state.SelectedSegment).
		Str("productLine", state.SelectedProductLine).
		Str("period", state.SelectedPeriod).
		Msg("看板状态已更新")

	return s.engine.Snapshot(), nil
}

// Snapshot 当前快照
func (s *Session) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Snapshot()
}

// Overview 看板总览
func (s *Session) Overview() models.Overview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Overview()
}

// FilterOptions 筛选选项
func (s *Session) FilterOptions() models.FilterOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.FilterOptions()
}
