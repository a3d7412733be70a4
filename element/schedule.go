package element

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// ScheduleEntry 表示信号灯方案中的一项：某条驶入街道的绿灯时长
type ScheduleEntry struct {
	Street   string
	Duration float64
}

// Schedule 表示一个路口的信号灯方案
// 各条街道按顺序轮流获得绿灯，周期循环
//
// 时长以浮点数保存，优化过程会将其改写为小数；
// 判断绿灯时每项时长向上取整（至少为1），输出方案时则截断取整。
type Schedule struct {
	streets   []string
	durations []float64
	cycle     int // 缓存的周期长度，-1表示需要重新计算
}

// NewSchedule 创建一个空的信号灯方案
func NewSchedule() *Schedule {
	return &Schedule{cycle: -1}
}

// EffectiveDuration 返回模拟时实际使用的绿灯时长（向上取整，至少为1）
func EffectiveDuration(raw float64) int {
	d := int(math.Ceil(raw))
	if d < 1 {
		d = 1
	}
	return d
}

// TruncatedDuration 返回写入方案文件的绿灯时长（截断取整）
func TruncatedDuration(raw float64) int {
	return int(raw)
}

// Add 在方案末尾追加一项
func (s *Schedule) Add(street string, duration float64) {
	if duration < 0 || math.IsNaN(duration) {
		panic("duration must be non-negative")
	}
	s.streets = append(s.streets, street)
	s.durations = append(s.durations, duration)
	s.invalidate()
}

// Clear 清空方案
func (s *Schedule) Clear() {
	s.streets = s.streets[:0]
	s.durations = s.durations[:0]
	s.invalidate()
}

// Len 返回方案中的项数
func (s *Schedule) Len() int {
	return len(s.streets)
}

// IsEmpty 方案为空时该路口的所有街道永远不会变绿
func (s *Schedule) IsEmpty() bool {
	return len(s.streets) == 0
}

// Contains 判断方案中是否包含指定街道
func (s *Schedule) Contains(street string) bool {
	return slices.Contains(s.streets, street)
}

// Street 返回第i项的街道名
func (s *Schedule) Street(i int) string {
	return s.streets[i]
}

// Streets 返回方案中街道名的副本
func (s *Schedule) Streets() []string {
	return slices.Clone(s.streets)
}

// Duration 返回第i项的原始时长
func (s *Schedule) Duration(i int) float64 {
	return s.durations[i]
}

// SetDuration 改写第i项的时长
func (s *Schedule) SetDuration(i int, duration float64) {
	if duration < 0 || math.IsNaN(duration) {
		panic("duration must be non-negative")
	}
	s.durations[i] = duration
	s.invalidate()
}

// Entries 返回方案各项的副本
func (s *Schedule) Entries() []ScheduleEntry {
	entries := make([]ScheduleEntry, len(s.streets))
	for i := range s.streets {
		entries[i] = ScheduleEntry{Street: s.streets[i], Duration: s.durations[i]}
	}
	return entries
}

// TotalDuration 返回原始时长之和
func (s *Schedule) TotalDuration() float64 {
	return floats.Sum(s.durations)
}

// Scale 按比例缩放所有项的时长
func (s *Schedule) Scale(factor float64) {
	if factor <= 0 || math.IsNaN(factor) {
		panic("factor must be positive")
	}
	floats.Scale(factor, s.durations)
	s.invalidate()
}

// CycleLength 返回周期长度，即各项实际时长之和
func (s *Schedule) CycleLength() int {
	if s.cycle < 0 {
		total := 0
		for _, d := range s.durations {
			total += EffectiveDuration(d)
		}
		s.cycle = total
	}
	return s.cycle
}

// IsGreen 判断在time时刻指定街道是否为绿灯
func (s *Schedule) IsGreen(street string, time int) bool {
	if len(s.streets) == 0 {
		return false
	}

	t := time % s.CycleLength()
	for i, d := range s.durations {
		t -= EffectiveDuration(d)
		if t < 0 {
			return s.streets[i] == street
		}
	}

	panic(fmt.Sprintf("schedule walk ran out of entries: time %d, cycle length %d, %d entries",
		time, s.CycleLength(), len(s.streets)))
}

// Clone 返回方案的深拷贝
func (s *Schedule) Clone() *Schedule {
	return &Schedule{
		streets:   slices.Clone(s.streets),
		durations: slices.Clone(s.durations),
		cycle:     -1,
	}
}

func (s *Schedule) invalidate() {
	s.cycle = -1
}
