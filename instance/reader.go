package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"signalSim/element"
)

// Instance 表示一个待求解的输入
type Instance struct {
	Name     string // 输入文件名（不含扩展名）
	Duration int    // 模拟时长
	Bonus    int    // 每辆按时到达的车辆获得的固定奖励
	Network  *element.Network
	Cars     []*element.Car
}

// Load 读取并解析输入文件
func Load(path string) (*Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer file.Close()

	inst, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	inst.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return inst, nil
}

// Read 解析输入
//
// 第一行: 时长 路口数 街道数 车辆数 奖励
// 接下来每行一条街道: 起点 终点 街道名 长度
// 接下来每行一辆车: 街道数 街道名...
func Read(r io.Reader) (*Instance, error) {
	lr := newLineReader(r)

	header, err := lr.ints(5)
	if err != nil {
		return nil, err
	}
	duration, numIntersections, numStreets, numCars, bonus := header[0], header[1], header[2], header[3], header[4]
	if duration < 1 {
		return nil, fmt.Errorf("line %d: duration must be positive, got %d", lr.line, duration)
	}
	if numIntersections < 0 || numStreets < 0 || numCars < 0 || bonus < 0 {
		return nil, fmt.Errorf("line %d: negative count in header %v", lr.line, header)
	}

	net := element.NewNetwork(numIntersections)
	for i := 0; i < numStreets; i++ {
		fields, err := lr.fields(4)
		if err != nil {
			return nil, err
		}
		start, err1 := strconv.Atoi(fields[0])
		end, err2 := strconv.Atoi(fields[1])
		length, err3 := strconv.Atoi(fields[3])
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("line %d: malformed street %q", lr.line, strings.Join(fields, " "))
		}
		if _, err := net.AddStreet(fields[2], length, start, end); err != nil {
			return nil, fmt.Errorf("line %d: %w", lr.line, err)
		}
	}

	cars := make([]*element.Car, 0, numCars)
	for i := 0; i < numCars; i++ {
		fields, err := lr.fields(-1)
		if err != nil {
			return nil, err
		}
		pathLength, err := strconv.Atoi(fields[0])
		if err != nil || pathLength < 1 {
			return nil, fmt.Errorf("line %d: malformed path length %q", lr.line, fields[0])
		}
		if len(fields) != pathLength+1 {
			return nil, fmt.Errorf("line %d: expected %d streets, got %d", lr.line, pathLength, len(fields)-1)
		}
		path := fields[1:]
		if err := net.ValidatePath(path); err != nil {
			return nil, fmt.Errorf("line %d: car %d: %w", lr.line, i, err)
		}
		cars = append(cars, element.NewCar(i, path))
	}
	if err := lr.done(); err != nil {
		return nil, err
	}

	return &Instance{
		Duration: duration,
		Bonus:    bonus,
		Network:  net,
		Cars:     cars,
	}, nil
}

// lineReader 按行读取并拆分空白分隔的字段，跳过空行
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	// 车辆行程可能很长
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	return &lineReader{sc: sc}
}

// fields 读取下一行非空行；n>=0时要求字段数恰好为n
func (lr *lineReader) fields(n int) ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		fields := strings.Fields(lr.sc.Text())
		if len(fields) == 0 {
			continue
		}
		if n >= 0 && len(fields) != n {
			return nil, fmt.Errorf("line %d: expected %d fields, got %d", lr.line, n, len(fields))
		}
		return fields, nil
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lr.line+1, err)
	}
	return nil, fmt.Errorf("line %d: %w", lr.line+1, io.ErrUnexpectedEOF)
}

// ints 读取下一行并解析为n个整数
func (lr *lineReader) ints(n int) ([]int, error) {
	fields, err := lr.fields(n)
	if err != nil {
		return nil, err
	}
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lr.line, err)
		}
		values[i] = v
	}
	return values, nil
}

// done 检查输入中是否还有多余的非空行
func (lr *lineReader) done() error {
	for lr.sc.Scan() {
		lr.line++
		if strings.TrimSpace(lr.sc.Text()) != "" {
			return fmt.Errorf("line %d: unexpected trailing content", lr.line)
		}
	}
	return lr.sc.Err()
}
