package element

import (
	"container/list"
	"fmt"
)

// Street 表示连接两个路口的单向街道
// 街道上的车辆按到达顺序排队，队首是最接近路口的车辆
type Street struct {
	name   string
	length int // 通过街道所需的时间步
	start  int // 起点路口ID
	end    int // 终点路口ID
	cars   *list.List
}

// NewStreet 创建一条新的街道
func NewStreet(name string, length, start, end int) *Street {
	if name == "" {
		panic("street name must not be empty")
	}
	if length < 0 {
		panic("length must be non-negative")
	}
	if start < 0 || end < 0 {
		panic("intersection ids must be non-negative")
	}

	return &Street{
		name:   name,
		length: length,
		start:  start,
		end:    end,
		cars:   list.New(),
	}
}

// Name 返回街道名
func (s *Street) Name() string {
	return s.name
}

// Length 返回街道长度
func (s *Street) Length() int {
	return s.length
}

// Start 返回起点路口ID
func (s *Street) Start() int {
	return s.start
}

// End 返回终点路口ID，该路口的信号灯控制本街道
func (s *Street) End() int {
	return s.end
}

// Clone 返回拓扑相同但队列为空的副本
func (s *Street) Clone() *Street {
	return NewStreet(s.name, s.length, s.start, s.end)
}

// NumCars 返回队列中的车辆数
func (s *Street) NumCars() int {
	return s.cars.Len()
}

// ListCars 按队列顺序返回街道上的所有车辆
func (s *Street) ListCars() []*Car {
	cars := make([]*Car, 0, s.cars.Len())
	for e := s.cars.Front(); e != nil; e = e.Next() {
		cars = append(cars, e.Value.(*Car))
	}
	return cars
}

// Enqueue 将车辆加入队尾
func (s *Street) Enqueue(car *Car) {
	s.cars.PushBack(car)
}

// Tick 推进街道上所有车辆一个时间步
// 返回本时间步开始时已到达街道尽头的车辆数，以及完成全部行程而被移出的车辆数
func (s *Street) Tick() (ready, finished int) {
	var next *list.Element
	for e := s.cars.Front(); e != nil; e = next {
		next = e.Next()
		car := e.Value.(*Car)

		if car.Ready() {
			ready++
		}
		car.drive()

		// 最后一条街道无需等待绿灯，到达即完成
		if car.Ready() && car.AtLastStreet() {
			s.cars.Remove(e)
			finished++
		}
	}
	return ready, finished
}

// PopReady 若队首车辆已到达街道尽头，则将其移出队列并返回
func (s *Street) PopReady() *Car {
	front := s.cars.Front()
	if front == nil {
		return nil
	}
	car := front.Value.(*Car)
	if !car.Ready() {
		return nil
	}
	s.cars.Remove(front)
	return car
}

func (s *Street) String() string {
	return fmt.Sprintf("%s, L: %d, start: %d, stop: %d", s.name, s.length, s.start, s.end)
}
