package simulator

import (
	"io"
	"maps"
	"os"
	"testing"

	"signalSim/element"
	"signalSim/log"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type streetDef struct {
	name       string
	start, end int
	length     int
}

func newNetwork(t *testing.T, numIntersections int, streets ...streetDef) *element.Network {
	t.Helper()
	net := element.NewNetwork(numIntersections)
	for _, s := range streets {
		if _, err := net.AddStreet(s.name, s.length, s.start, s.end); err != nil {
			t.Fatalf("AddStreet(%s): %v", s.name, err)
		}
	}
	return net
}

func schedule(t *testing.T, net *element.Network, id int, entries ...element.ScheduleEntry) {
	t.Helper()
	for _, e := range entries {
		if err := net.Intersection(id).AddToSchedule(e.Street, e.Duration); err != nil {
			t.Fatal(err)
		}
	}
}

func cars(paths ...[]string) []*element.Car {
	result := make([]*element.Car, len(paths))
	for i, p := range paths {
		result[i] = element.NewCar(i, p)
	}
	return result
}

// 路口0 --A--> 路口1 --B--> 路口0
func twoStreetNetwork(t *testing.T) *element.Network {
	net := newNetwork(t, 2,
		streetDef{"A", 0, 1, 2},
		streetDef{"B", 1, 0, 2},
	)
	schedule(t, net, 1, element.ScheduleEntry{Street: "A", Duration: 1})
	return net
}

func TestRunSingleStreetScoresImmediately(t *testing.T) {
	net := twoStreetNetwork(t)
	stats := Run(net, cars([]string{"A"}), 4, 1000)

	if stats.Score != 1004 {
		t.Errorf("Score = %d, want 1004", stats.Score)
	}
	if stats.Finished != 1 {
		t.Errorf("Finished = %d, want 1", stats.Finished)
	}
	if got := stats.CongestionOf("A"); got != 1 {
		t.Errorf("congestion A = %d, want 1", got)
	}
}

func TestRunWithTravelDelay(t *testing.T) {
	net := twoStreetNetwork(t)
	stats := Run(net, cars([]string{"A", "B"}), 4, 1000)

	if stats.Score != 1002 {
		t.Errorf("Score = %d, want 1002", stats.Score)
	}
	if got := stats.CongestionOf("B"); got != 0 {
		t.Errorf("congestion B = %d, want 0", got)
	}
}

func TestRunOneCrossingPerTick(t *testing.T) {
	net := twoStreetNetwork(t)
	fleet := cars([]string{"A", "B"}, []string{"A", "B"}, []string{"A", "B"})

	// 三辆车分别在时刻0、1、2通过路口，在2、3、4到达
	stats := Run(net, fleet, 4, 1000)
	if want := 1002 + 1001 + 1000; stats.Score != want {
		t.Errorf("Score = %d, want %d", stats.Score, want)
	}
	// 时刻0有3辆车等待，时刻1有2辆，时刻2有1辆
	if got := stats.CongestionOf("A"); got != 6 {
		t.Errorf("congestion A = %d, want 6", got)
	}

	// 时长缩短后最后一辆车无法按时到达
	stats = Run(net, fleet, 3, 1000)
	if want := 1001 + 1000; stats.Score != want {
		t.Errorf("Score = %d, want %d", stats.Score, want)
	}
	if stats.Finished != 2 {
		t.Errorf("Finished = %d, want 2", stats.Finished)
	}
}

func TestRunEmptyScheduleBlocksTraffic(t *testing.T) {
	net := newNetwork(t, 2,
		streetDef{"A", 0, 1, 2},
		streetDef{"B", 1, 0, 2},
	)
	stats := Run(net, cars([]string{"A", "B"}), 4, 1000)

	if stats.Score != 0 {
		t.Errorf("Score = %d, want 0", stats.Score)
	}
	// 车辆在时刻0..4一直等待
	if got := stats.CongestionOf("A"); got != 5 {
		t.Errorf("congestion A = %d, want 5", got)
	}
}

func TestRunRespectsLightCycle(t *testing.T) {
	// 路口1交替放行A和C
	net := newNetwork(t, 3,
		streetDef{"A", 0, 1, 1},
		streetDef{"C", 2, 1, 1},
		streetDef{"B", 1, 0, 1},
	)
	schedule(t, net, 1,
		element.ScheduleEntry{Street: "A", Duration: 1},
		element.ScheduleEntry{Street: "C", Duration: 1},
	)

	// C在时刻1变绿后通过，时刻2到达B的尽头
	stats := Run(net, cars([]string{"C", "B"}), 10, 100)
	if want := 100 + (10 - 2); stats.Score != want {
		t.Errorf("Score = %d, want %d", stats.Score, want)
	}
	if got := stats.CongestionOf("C"); got != 2 {
		t.Errorf("congestion C = %d, want 2", got)
	}
}

func TestRunAdvanceDeferredToEndOfTick(t *testing.T) {
	// 长度为0的街道：若在同一时间步内立即处理，车辆会连续通过两个路口
	net := newNetwork(t, 3,
		streetDef{"A", 0, 1, 1},
		streetDef{"B", 1, 2, 0},
		streetDef{"C", 2, 0, 1},
	)
	schedule(t, net, 1, element.ScheduleEntry{Street: "A", Duration: 1})
	schedule(t, net, 2, element.ScheduleEntry{Street: "B", Duration: 1})

	// 时刻0通过A，时刻1通过B，时刻2到达C的尽头
	stats := Run(net, cars([]string{"A", "B", "C"}), 5, 10)
	if want := 10 + (5 - 2); stats.Score != want {
		t.Errorf("Score = %d, want %d", stats.Score, want)
	}
}

func TestRunIsDeterministicAndPure(t *testing.T) {
	net := newNetwork(t, 3,
		streetDef{"A", 0, 1, 3},
		streetDef{"C", 2, 1, 2},
		streetDef{"B", 1, 0, 1},
		streetDef{"D", 1, 2, 2},
	)
	schedule(t, net, 1,
		element.ScheduleEntry{Street: "A", Duration: 2},
		element.ScheduleEntry{Street: "C", Duration: 1.5},
	)
	fleet := cars(
		[]string{"A", "B"},
		[]string{"C", "D"},
		[]string{"A", "D", "C", "B"},
		[]string{"C", "B", "A", "D"},
	)

	first := Run(net, fleet, 20, 50)
	second := Run(net, fleet, 20, 50)
	if first.Score != second.Score || first.Finished != second.Finished {
		t.Errorf("runs differ: %+v vs %+v", first, second)
	}
	if !maps.Equal(first.Congestion, second.Congestion) {
		t.Errorf("congestion differs: %v vs %v", first.Congestion, second.Congestion)
	}

	// 原始车辆和街道不受模拟影响
	for _, car := range fleet {
		if car.Index() != 0 || car.DistLeft() != 0 {
			t.Errorf("car %d mutated: index %d dist %d", car.ID(), car.Index(), car.DistLeft())
		}
	}
	for _, street := range net.Streets() {
		if street.NumCars() != 0 {
			t.Errorf("street %s has %d queued cars after Run", street.Name(), street.NumCars())
		}
	}
}

func TestRunScoreBoundPerCar(t *testing.T) {
	net := twoStreetNetwork(t)
	const duration, bonus = 6, 10

	// 每辆车的得分为0或bonus+(duration-t)，0<=t<=duration
	for n := 1; n <= 5; n++ {
		paths := make([][]string, n)
		for i := range paths {
			paths[i] = []string{"A", "B"}
		}
		stats := Run(net, cars(paths...), duration, bonus)

		if stats.Finished > n {
			t.Fatalf("finished %d of %d cars", stats.Finished, n)
		}
		if stats.Score < stats.Finished*bonus || stats.Score > stats.Finished*(bonus+duration) {
			t.Errorf("%d cars: score %d outside [%d, %d]", n, stats.Score,
				stats.Finished*bonus, stats.Finished*(bonus+duration))
		}
	}
}
