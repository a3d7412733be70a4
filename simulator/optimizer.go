package simulator

import (
	"signalSim/config"
	"signalSim/element"

	"github.com/samber/lo"
)

// Optimizer 根据每轮模拟的拥堵统计调整各路口的信号灯方案
//
// 方案在路网中原地修改并在各轮之间保留；得分下降时不回滚，
// 只记录出现过的最高分。
type Optimizer struct {
	Iterations int
	Bump       float64 // 调整时先增加的时长
	Damping    float64 // 增加后乘以的衰减系数

	// 以下字段仅用于观测，不影响优化过程
	State       *OptimizerState
	LogInterval int  // 每隔多少轮输出一次日志，0表示只在刷新最高分时输出
	Record      bool // 是否将每轮数据交给recorder
}

// NewOptimizer 根据配置创建优化器
func NewOptimizer(cfg *config.Config) *Optimizer {
	return &Optimizer{
		Iterations:  cfg.Simulation.Iterations,
		Bump:        cfg.Simulation.Bump,
		Damping:     cfg.Simulation.Damping,
		LogInterval: cfg.Logging.IntervalWriteToLog,
		Record:      cfg.Recorder.Enabled,
	}
}

// Optimize 使用默认调整参数执行iterations轮优化，返回最高分
func Optimize(net *element.Network, cars []*element.Car, duration, bonus, iterations int) int {
	o := &Optimizer{
		Iterations: iterations,
		Bump:       config.DefaultBump,
		Damping:    config.DefaultDamping,
	}
	return o.Optimize(net, cars, duration, bonus)
}

// Optimize 执行固定轮数的优化，返回各轮中的最高分
func (o *Optimizer) Optimize(net *element.Network, cars []*element.Car, duration, bonus int) int {
	state := o.State
	if state == nil {
		state = NewOptimizerState("", 0)
	}

	for round := 0; round < o.Iterations; round++ {
		stats := Run(net, cars, duration, bonus)

		improved := state.Update(round, stats.Score)
		if improved || (o.LogInterval > 0 && round%o.LogInterval == 0) {
			state.LogStatus(improved)
		}
		if o.Record {
			state.RecordData()
		}

		for _, inter := range net.Intersections() {
			o.adjust(inter.Schedule(), stats, duration)
		}
	}

	return state.Best()
}

// adjust 按拥堵比例调整一个路口的方案
// 绿灯时间占比低于拥堵占比的街道获得更长的绿灯，
// 总时长超过模拟时长时按比例缩放到恰好等于模拟时长
func (o *Optimizer) adjust(sched *element.Schedule, stats *Stats, duration int) {
	if sched.IsEmpty() {
		return
	}

	totalCongestion := lo.SumBy(sched.Streets(), stats.CongestionOf)
	if totalCongestion == 0 {
		return
	}
	totalDuration := sched.TotalDuration()

	for i := 0; i < sched.Len(); i++ {
		// 时长全为0时所有拥堵的街道都获得增加
		timeFrac := 0.0
		if totalDuration > 0 {
			timeFrac = sched.Duration(i) / totalDuration
		}
		conFrac := float64(stats.CongestionOf(sched.Street(i))) / float64(totalCongestion)
		if timeFrac < conFrac {
			sched.SetDuration(i, (sched.Duration(i)+o.Bump)*o.Damping)
		}
	}

	if total := sched.TotalDuration(); total > float64(duration) {
		sched.Scale(float64(duration) / total)
	}
}
