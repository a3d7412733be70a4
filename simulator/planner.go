package simulator

import (
	"signalSim/element"
	"signalSim/utils"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/graph"
)

// UsedStreets 返回至少出现在一辆车行程中的街道
func UsedStreets(cars []*element.Car) map[string]struct{} {
	names := lo.Uniq(lo.FlatMap(cars, func(car *element.Car, _ int) []string {
		return car.Path()
	}))

	used := make(map[string]struct{}, len(names))
	for _, name := range names {
		used[name] = struct{}{}
	}
	return used
}

// PruneUnusedStreets 将没有任何车辆经过的街道移出模拟和信号灯方案
// 返回被移除的街道名
func PruneUnusedStreets(net *element.Network, cars []*element.Car) []string {
	used := UsedStreets(cars)
	return net.RemoveStreets(func(street string) bool {
		_, ok := used[street]
		return !ok
	})
}

// InitSchedules 为每个路口生成初始方案：按驶入顺序，每条驶入街道获得相同的绿灯时长
// 返回方案非空的路口数量
func InitSchedules(net *element.Network, duration float64) int {
	if duration < 0 {
		panic("duration must be non-negative")
	}

	scheduled := 0
	for _, inter := range net.Intersections() {
		inter.Schedule().Clear()
		for _, street := range inter.In() {
			if err := inter.AddToSchedule(street, duration); err != nil {
				panic(err)
			}
		}
		if !inter.Schedule().IsEmpty() {
			scheduled++
		}
	}
	return scheduled
}

// CarRoute 返回车辆依次到达的路口ID，从第一条街道的终点开始
func CarRoute(net *element.Network, car *element.Car) []int64 {
	path := car.Path()
	route := make([]int64, 0, len(path))
	for _, name := range path {
		street, ok := net.Street(name)
		if !ok {
			return nil
		}
		route = append(route, int64(street.End()))
	}
	return route
}

// UnroutableCars 返回行程无法对应到路口图中一条路径的车辆编号
func UnroutableCars(g graph.Graph, net *element.Network, cars []*element.Car) []int {
	var ids []int
	for _, car := range cars {
		route := CarRoute(net, car)
		if route == nil || !utils.IsRouteIn(g, route) {
			ids = append(ids, car.ID())
		}
	}
	return ids
}

// TheoreticalBound 返回不考虑信号灯和排队时的得分上限
// 每辆车的最短用时为行程中除第一条外所有街道长度之和
func TheoreticalBound(net *element.Network, cars []*element.Car, duration, bonus int) int {
	bound := 0
	for _, car := range cars {
		time := 0
		for _, name := range car.Path()[1:] {
			street, ok := net.Street(name)
			if !ok {
				panic("unknown street " + name)
			}
			time += street.Length()
		}

		if time <= duration {
			bound += bonus + (duration - time)
		}
	}
	return bound
}
