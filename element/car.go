package element

import (
	"fmt"
	"slices"
)

// Car 表示一辆按固定行程行驶的车辆
type Car struct {
	id       int      // 车辆编号（输入中的顺序）
	path     []string // 行程，依次经过的街道
	index    int      // 当前所在街道在行程中的下标
	distLeft int      // 在当前街道上剩余的行驶距离
}

// NewCar 创建一辆新车，车辆位于行程的第一条街道上且无需行驶
func NewCar(id int, path []string) *Car {
	if len(path) == 0 {
		panic("path must contain at least one street")
	}
	return &Car{
		id:   id,
		path: slices.Clone(path),
	}
}

// ID 返回车辆编号
func (c *Car) ID() int {
	return c.id
}

// Path 返回行程的副本
func (c *Car) Path() []string {
	return slices.Clone(c.path)
}

// PathLength 返回行程中的街道数量
func (c *Car) PathLength() int {
	return len(c.path)
}

// Index 返回当前街道在行程中的下标
func (c *Car) Index() int {
	return c.index
}

// DistLeft 返回在当前街道上剩余的行驶距离
func (c *Car) DistLeft() int {
	return c.distLeft
}

// CurrentStreet 返回车辆当前所在的街道
func (c *Car) CurrentStreet() string {
	return c.path[c.index]
}

// NextStreet 返回行程中的下一条街道
func (c *Car) NextStreet() string {
	return c.path[c.index+1]
}

// AtLastStreet 判断车辆是否位于行程的最后一条街道
func (c *Car) AtLastStreet() bool {
	return c.index == len(c.path)-1
}

// Ready 判断车辆是否已到达当前街道的尽头
func (c *Car) Ready() bool {
	return c.distLeft == 0
}

// Advance 驶入行程中的下一条街道，length为该街道长度
func (c *Car) Advance(length int) {
	if c.AtLastStreet() {
		panic(fmt.Sprintf("car %d has no street after %s", c.id, c.CurrentStreet()))
	}
	if c.distLeft != 0 {
		panic(fmt.Sprintf("car %d is still %d away from the end of %s", c.id, c.distLeft, c.CurrentStreet()))
	}
	c.index++
	c.distLeft = length
}

// Clone 返回回到初始状态的副本，行程共享不变
func (c *Car) Clone() *Car {
	return &Car{
		id:   c.id,
		path: c.path,
	}
}

// drive 行驶一个时间步
func (c *Car) drive() {
	if c.distLeft > 0 {
		c.distLeft--
	}
}

func (c *Car) String() string {
	return fmt.Sprintf("Car %d, stops: %d", c.id, len(c.path))
}
