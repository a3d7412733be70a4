package simulator

// Stats 保存一次完整模拟的结果
type Stats struct {
	// 街道名 -> 各时间步中处于就绪状态的车辆数之和，作为拥堵信号
	Congestion map[string]int64

	Score    int // 总得分
	Finished int // 在时限内完成行程的车辆数
}

// NewStats 创建空的统计结果
func NewStats(numStreets int) *Stats {
	return &Stats{
		Congestion: make(map[string]int64, numStreets),
	}
}

// CongestionOf 返回街道的累计拥堵计数，未出现的街道为0
func (s *Stats) CongestionOf(street string) int64 {
	return s.Congestion[street]
}

func (s *Stats) addCongestion(street string, ready int) {
	s.Congestion[street] += int64(ready)
}
