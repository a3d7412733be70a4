package instance

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"signalSim/element"
)

// LoadSubmission 读取提交文件并替换路网中的信号灯方案
func LoadSubmission(path string, net *element.Network) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening submission: %w", err)
	}
	defer file.Close()

	if err := ReadSubmission(file, net); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// ReadSubmission 解析提交内容并替换路网中的信号灯方案
//
// 第一行: 有方案的路口数
// 每个路口: 路口ID / 项数 / 每行 "街道名 时长"
// 出错时路网中的方案处于未定义状态
func ReadSubmission(r io.Reader, net *element.Network) error {
	lr := newLineReader(r)

	header, err := lr.ints(1)
	if err != nil {
		return err
	}
	numScheduled := header[0]
	if numScheduled < 0 || numScheduled > net.NumIntersections() {
		return fmt.Errorf("line %d: invalid intersection count %d", lr.line, numScheduled)
	}

	net.ClearSchedules()
	seen := make(map[int]bool, numScheduled)
	for i := 0; i < numScheduled; i++ {
		ids, err := lr.ints(1)
		if err != nil {
			return err
		}
		id := ids[0]
		if id < 0 || id >= net.NumIntersections() {
			return fmt.Errorf("line %d: unknown intersection %d", lr.line, id)
		}
		if seen[id] {
			return fmt.Errorf("line %d: intersection %d scheduled twice", lr.line, id)
		}
		seen[id] = true

		counts, err := lr.ints(1)
		if err != nil {
			return err
		}
		if counts[0] < 1 {
			return fmt.Errorf("line %d: intersection %d needs at least one entry", lr.line, id)
		}

		inter := net.Intersection(id)
		for j := 0; j < counts[0]; j++ {
			fields, err := lr.fields(2)
			if err != nil {
				return err
			}
			duration, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("line %d: %w", lr.line, err)
			}
			if _, ok := net.Street(fields[0]); !ok {
				return fmt.Errorf("line %d: unknown street %s", lr.line, fields[0])
			}
			if err := inter.AddToSchedule(fields[0], float64(duration)); err != nil {
				return fmt.Errorf("line %d: %w", lr.line, err)
			}
		}
	}

	return lr.done()
}
