package simulator

import (
	"fmt"
	"signalSim/log"
	"signalSim/recorder"
	"sync"
)

// OptimizerState 缓存并管理优化过程的状态
// 包括当前轮次、本轮得分、历史最高分以及理论上限
type OptimizerState struct {
	input string
	round int
	score int
	best  int
	bound int // 理论得分上限，0表示未知
	mu    sync.RWMutex
}

// NewOptimizerState 创建一个新的优化状态对象
func NewOptimizerState(input string, bound int) *OptimizerState {
	return &OptimizerState{
		input: input,
		bound: bound,
	}
}

// Update 记录一轮模拟的得分
// 返回本轮是否刷新了最高分
func (s *OptimizerState) Update(round, score int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.round = round
	s.score = score
	if score > s.best {
		s.best = score
		return true
	}
	return false
}

// RecordData 将本轮数据交给recorder缓存
func (s *OptimizerState) RecordData() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recorder.RecordRoundData(s.input, s.round, s.score, s.best, s.ratio())
}

// LogStatus 输出本轮得分日志
func (s *OptimizerState) LogStatus(improved bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if improved {
		log.WriteLog(fmt.Sprintf("[%s] Round %d, BEST Score: %d", s.input, s.round, s.score))
		return
	}
	log.WriteLog(fmt.Sprintf("[%s] Round %d, Score: %d (%.1f%%)", s.input, s.round, s.score, 100*s.ratio()))
}

// Best 返回目前为止的最高分
func (s *OptimizerState) Best() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.best
}

// Score 返回最近一轮的得分
func (s *OptimizerState) Score() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.score
}

// Ratio 返回最近一轮得分与最高分之比
func (s *OptimizerState) Ratio() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ratio()
}

// BoundRatio 返回最高分与理论上限之比，上限未知时为0
func (s *OptimizerState) BoundRatio() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bound <= 0 {
		return 0
	}
	return float64(s.best) / float64(s.bound)
}

func (s *OptimizerState) ratio() float64 {
	if s.best == 0 {
		return 0
	}
	return float64(s.score) / float64(s.best)
}
