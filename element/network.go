package element

import (
	"fmt"
	"slices"
)

// Network 表示由路口和单向街道组成的路网
// 路网拓扑在读入后不再改变，只有各路口的信号灯方案会被修改
type Network struct {
	intersections []*Intersection
	streets       []*Street          // 按输入顺序保存，模拟时按此顺序遍历
	byName        map[string]*Street // 街道名 -> 街道
}

// NewNetwork 创建包含numIntersections个路口（ID为0..n-1）的路网
func NewNetwork(numIntersections int) *Network {
	if numIntersections < 0 {
		panic("numIntersections must be non-negative")
	}

	intersections := make([]*Intersection, numIntersections)
	for i := range intersections {
		intersections[i] = NewIntersection(i)
	}
	return &Network{
		intersections: intersections,
		byName:        make(map[string]*Street),
	}
}

// AddStreet 添加一条街道并更新两端路口的驶入、驶出列表
func (n *Network) AddStreet(name string, length, start, end int) (*Street, error) {
	if name == "" {
		return nil, fmt.Errorf("empty street name")
	}
	if _, ok := n.byName[name]; ok {
		return nil, fmt.Errorf("duplicate street %s", name)
	}
	if length < 0 {
		return nil, fmt.Errorf("street %s has negative length %d", name, length)
	}
	if start < 0 || start >= len(n.intersections) {
		return nil, fmt.Errorf("street %s starts at unknown intersection %d", name, start)
	}
	if end < 0 || end >= len(n.intersections) {
		return nil, fmt.Errorf("street %s ends at unknown intersection %d", name, end)
	}

	street := NewStreet(name, length, start, end)
	n.streets = append(n.streets, street)
	n.byName[name] = street
	n.intersections[start].addOut(name)
	n.intersections[end].addIn(name)
	return street, nil
}

// Street 按名称查找街道
func (n *Network) Street(name string) (*Street, bool) {
	s, ok := n.byName[name]
	return s, ok
}

// Streets 按输入顺序返回参与模拟的街道
func (n *Network) Streets() []*Street {
	return slices.Clone(n.streets)
}

// NumStreets 返回参与模拟的街道数量
func (n *Network) NumStreets() int {
	return len(n.streets)
}

// Intersection 返回指定ID的路口
func (n *Network) Intersection(id int) *Intersection {
	return n.intersections[id]
}

// Intersections 返回所有路口
func (n *Network) Intersections() []*Intersection {
	return slices.Clone(n.intersections)
}

// NumIntersections 返回路口数量
func (n *Network) NumIntersections() int {
	return len(n.intersections)
}

// ValidatePath 检查行程中的街道都存在且首尾相接
func (n *Network) ValidatePath(path []string) error {
	if len(path) == 0 {
		return fmt.Errorf("empty path")
	}

	var prev *Street
	for i, name := range path {
		street, ok := n.byName[name]
		if !ok {
			return fmt.Errorf("unknown street %s at position %d", name, i)
		}
		if prev != nil && prev.End() != street.Start() {
			return fmt.Errorf("street %s ends at intersection %d but %s starts at %d",
				prev.Name(), prev.End(), street.Name(), street.Start())
		}
		prev = street
	}
	return nil
}

// RemoveStreets 将街道移出模拟，并从两端路口的驶入、驶出列表中删除
// 返回实际移除的街道名
func (n *Network) RemoveStreets(remove func(street string) bool) []string {
	var removed []string
	n.streets = slices.DeleteFunc(n.streets, func(s *Street) bool {
		if remove(s.Name()) {
			removed = append(removed, s.Name())
			return true
		}
		return false
	})

	keep := func(s string) bool { return !remove(s) }
	for _, inter := range n.intersections {
		inter.PruneIn(keep)
		inter.pruneOut(keep)
	}
	return removed
}

// ClearSchedules 清空所有路口的信号灯方案
func (n *Network) ClearSchedules() {
	for _, inter := range n.intersections {
		inter.Schedule().Clear()
	}
}
