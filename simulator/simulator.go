package simulator

import (
	"fmt"
	"signalSim/element"
)

// Run 执行一次完整的模拟并返回统计结果
//
// 街道队列和车辆状态在副本上推进，路网拓扑不会被修改；
// 信号灯方案直接读取路网中各路口的当前方案。
func Run(net *element.Network, cars []*element.Car, duration, bonus int) *Stats {
	// 为本次模拟创建街道和车辆的副本
	streets := net.Streets()
	lanes := make([]*element.Street, len(streets))
	byName := make(map[string]*element.Street, len(streets))
	for i, street := range streets {
		lane := street.Clone()
		lanes[i] = lane
		byName[lane.Name()] = lane
	}

	// 所有车辆都从行程第一条街道的尽头出发
	for _, car := range cars {
		c := car.Clone()
		lane, ok := byName[c.CurrentStreet()]
		if !ok {
			panic(fmt.Sprintf("car %d starts on street %s which is not simulated", c.ID(), c.CurrentStreet()))
		}
		lane.Enqueue(c)
	}

	stats := NewStats(len(lanes))
	carsToMove := make([]*element.Car, 0, len(lanes))

	for time := 0; time <= duration; time++ {
		// 第一遍：推进各街道并决定哪些车辆通过路口
		for _, lane := range lanes {
			ready, finished := lane.Tick()
			stats.Score += finished * (bonus + duration - time)
			stats.Finished += finished
			stats.addCongestion(lane.Name(), ready)

			// 每条街道每个时间步最多通过一辆车
			if net.Intersection(lane.End()).IsGreen(lane.Name(), time) {
				if car := lane.PopReady(); car != nil {
					carsToMove = append(carsToMove, car)
				}
			}
		}

		// 第二遍：统一将通过路口的车辆放入下一条街道
		for _, car := range carsToMove {
			next, ok := byName[car.NextStreet()]
			if !ok {
				panic(fmt.Sprintf("car %d continues on street %s which is not simulated", car.ID(), car.NextStreet()))
			}
			car.Advance(next.Length())
			next.Enqueue(car)
		}
		carsToMove = carsToMove[:0]
	}

	return stats
}
