package element

import (
	"fmt"
	"slices"
)

// Intersection 表示一个带信号灯的路口
type Intersection struct {
	id       int
	in       []string  // 驶入街道
	out      []string  // 驶出街道
	schedule *Schedule // 信号灯方案，在多轮优化之间原地修改
}

// NewIntersection 创建一个新的路口
func NewIntersection(id int) *Intersection {
	if id < 0 {
		panic("intersection id must be non-negative")
	}
	return &Intersection{
		id:       id,
		schedule: NewSchedule(),
	}
}

// ID 返回路口ID
func (i *Intersection) ID() int {
	return i.id
}

// In 返回驶入街道名的副本
func (i *Intersection) In() []string {
	return slices.Clone(i.in)
}

// Out 返回驶出街道名的副本
func (i *Intersection) Out() []string {
	return slices.Clone(i.out)
}

// HasIn 判断街道是否驶入该路口
func (i *Intersection) HasIn(street string) bool {
	return slices.Contains(i.in, street)
}

// Schedule 返回路口的信号灯方案
func (i *Intersection) Schedule() *Schedule {
	return i.schedule
}

// AddToSchedule 在信号灯方案末尾追加一项
// 只有驶入该路口的街道可以加入方案，且每条街道只能出现一次
func (i *Intersection) AddToSchedule(street string, duration float64) error {
	if !i.HasIn(street) {
		return fmt.Errorf("street %s does not enter intersection %d", street, i.id)
	}
	if i.schedule.Contains(street) {
		return fmt.Errorf("street %s already scheduled at intersection %d", street, i.id)
	}
	if duration < 0 {
		return fmt.Errorf("negative duration %v for street %s", duration, street)
	}
	i.schedule.Add(street, duration)
	return nil
}

// IsGreen 判断在time时刻驶入街道是否为绿灯
func (i *Intersection) IsGreen(street string, time int) bool {
	return i.schedule.IsGreen(street, time)
}

// PruneIn 从驶入街道中移除不满足keep的街道，返回移除数量
// 已在方案中的街道同样不会保留
func (i *Intersection) PruneIn(keep func(street string) bool) int {
	before := len(i.in)
	i.in = slices.DeleteFunc(i.in, func(s string) bool { return !keep(s) })

	if removed := before - len(i.in); removed > 0 && !i.schedule.IsEmpty() {
		entries := i.schedule.Entries()
		i.schedule.Clear()
		for _, e := range entries {
			if keep(e.Street) {
				i.schedule.Add(e.Street, e.Duration)
			}
		}
	}
	return before - len(i.in)
}

func (i *Intersection) pruneOut(keep func(street string) bool) {
	i.out = slices.DeleteFunc(i.out, func(s string) bool { return !keep(s) })
}

func (i *Intersection) addIn(street string) {
	i.in = append(i.in, street)
}

func (i *Intersection) addOut(street string) {
	i.out = append(i.out, street)
}

func (i *Intersection) String() string {
	return fmt.Sprintf("%d - in: %d, out: %d", i.id, len(i.in), len(i.out))
}
