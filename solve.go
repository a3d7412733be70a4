package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"signalSim/config"
	"signalSim/instance"
	"signalSim/log"
	"signalSim/recorder"
	"signalSim/simulator"
	"signalSim/utils"

	"github.com/samber/lo"
)

// solveResult 保存单个输入的求解结果
type solveResult struct {
	input  string
	score  int
	bound  int
	output string
}

// runSolve 并发求解所有输入，每个输入写出一个提交文件
func runSolve(cfg *config.Config, inputs []string) error {
	// 生成唯一的初始化时间标识
	initTime := time.Now().Format("20060102150405")

	pool, dataFiles, err := initializeResources(cfg, initTime)
	if err != nil {
		return err
	}
	defer func() {
		log.WriteLog("正在停止工作池...")
		pool.Stop()
		log.WriteLog("工作池已停止")
		log.CloseLog()
	}()

	log.WriteLog("----------------------------------Solve Start----------------------------------")

	var (
		mu      sync.Mutex
		errs    []error
		results []solveResult
	)
	for _, input := range inputs {
		ok := pool.Submit(func() {
			res, err := solveInput(cfg, input, dataFiles)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.WriteLog(fmt.Sprintf("[%s] failed: %v", input, err))
				errs = append(errs, fmt.Errorf("%s: %w", input, err))
				return
			}
			results = append(results, res)
		})
		if !ok {
			mu.Lock()
			errs = append(errs, fmt.Errorf("%s: worker pool closed", input))
			mu.Unlock()
		}
	}
	pool.Wait()

	// 完成求解，写入最后的数据
	if err := simulator.FinishSimulation(dataFiles); err != nil {
		errs = append(errs, err)
	}

	total := lo.SumBy(results, func(r solveResult) int { return r.score })
	bound := lo.SumBy(results, func(r solveResult) int { return r.bound })
	log.WriteLog(fmt.Sprintf("Solved %d/%d inputs, total score: %d, total optimum: %d",
		len(results), len(inputs), total, bound))
	log.WriteLog("---------------------------------- Completed ----------------------------------")

	return errors.Join(errs...)
}

// initializeResources 初始化日志、数据文件和工作池
// 记录关闭时返回的dataFiles为nil
func initializeResources(cfg *config.Config, initTime string) (*utils.WorkerPool, map[string]string, error) {
	// 日志初始化
	logFile := filepath.Join(cfg.Logging.LogDir, initTime+".log")
	if err := log.InitLog(logFile); err != nil {
		return nil, nil, err
	}
	log.LogEnvironment()

	// 记录模拟参数
	log.LogSimParameters(
		cfg.Simulation.Iterations,
		cfg.Simulation.InitialDuration,
		cfg.Simulation.Bump,
		cfg.Simulation.Damping,
		cfg.Solve.SkipOptimize,
		cfg.Solve.KeepUnused,
	)

	// 初始化工作池
	pool := utils.NewWorkerPool(cfg.Workers)
	log.WriteLog(fmt.Sprintf("Concurrent inputs: %d", pool.Workers()))

	if !cfg.Recorder.Enabled {
		log.WriteLog("数据记录已禁用")
		return pool, nil, nil
	}

	// 数据CSV初始化
	roundDataFile := filepath.Join(cfg.Recorder.DataDir, initTime+"_RoundData.csv")
	congestionDataFile := filepath.Join(cfg.Recorder.DataDir, initTime+"_CongestionData.csv")
	if err := recorder.InitRoundDataCSV(roundDataFile); err != nil {
		pool.Stop()
		return nil, nil, err
	}
	if err := recorder.InitCongestionDataCSV(congestionDataFile); err != nil {
		pool.Stop()
		return nil, nil, err
	}

	dataFiles := map[string]string{
		"round":      roundDataFile,
		"congestion": congestionDataFile,
	}
	return pool, dataFiles, nil
}

// solveInput 读取一个输入，生成并优化信号灯方案，写出提交文件
func solveInput(cfg *config.Config, path string, dataFiles map[string]string) (res solveResult, err error) {
	// 模拟中的不变量被破坏时会panic，转为错误返回
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while solving: %v", r)
		}
	}()

	startTime := time.Now()
	inst, err := instance.Load(path)
	if err != nil {
		return res, err
	}
	net := inst.Network
	log.WriteLog(fmt.Sprintf("[%s] Duration: %d, Intersections: %d, Streets: %d, Cars: %d, Bonus: %d",
		inst.Name, inst.Duration, net.NumIntersections(), net.NumStreets(), len(inst.Cars), inst.Bonus))

	// 检查路口图的连通性
	g := simulator.CreateIntersectionGraph(net)
	if utils.IsStronglyConnected(g) {
		log.WriteLog(fmt.Sprintf("[%s] 图连通性: true", inst.Name))
	} else {
		components := utils.StronglyConnectedComponents(g)
		log.WriteLog(fmt.Sprintf("[%s] 图连通性: false, 强连通分量: %d, 最大分量路口数: %d",
			inst.Name, len(components), len(components[0])))
	}
	if ids := simulator.UnroutableCars(g, net, inst.Cars); len(ids) > 0 {
		log.WriteLog(fmt.Sprintf("[%s] %d cars follow a route outside the intersection graph", inst.Name, len(ids)))
	}

	bound := simulator.TheoreticalBound(net, inst.Cars, inst.Duration, inst.Bonus)
	log.WriteLog(fmt.Sprintf("[%s] Optimum: %d", inst.Name, bound))

	if !cfg.Solve.KeepUnused {
		removed := simulator.PruneUnusedStreets(net, inst.Cars)
		log.WriteLog(fmt.Sprintf("[%s] Removed %d unused streets", inst.Name, len(removed)))
	}
	scheduled := simulator.InitSchedules(net, cfg.Simulation.InitialDuration)
	log.WriteLog(fmt.Sprintf("[%s] Scheduled intersections: %d", inst.Name, scheduled))

	if !cfg.Solve.SkipOptimize {
		opt := simulator.NewOptimizer(cfg)
		opt.Record = opt.Record && dataFiles != nil
		opt.State = simulator.NewOptimizerState(inst.Name, bound)
		best := opt.Optimize(net, inst.Cars, inst.Duration, inst.Bonus)
		log.WriteLog(fmt.Sprintf("[%s] Best score over %d rounds: %d", inst.Name, opt.Iterations, best))
	}

	// 最终方案再模拟一次得到提交文件对应的得分
	stats := simulator.Run(net, inst.Cars, inst.Duration, inst.Bonus)
	ratio := 0.0
	if bound > 0 {
		ratio = float64(stats.Score) / float64(bound)
	}
	log.WriteLog(fmt.Sprintf("[%s] Final score: %d, finished cars: %d/%d, %.1f%% of optimum",
		inst.Name, stats.Score, stats.Finished, len(inst.Cars), 100*ratio))

	if dataFiles != nil {
		recorder.RecordCongestionData(inst.Name, stats.Congestion)
		if err := simulator.WriteData(dataFiles); err != nil {
			return res, err
		}
	}

	output := filepath.Join(cfg.Solve.OutputDir, fmt.Sprintf("%s-%d.txt", inst.Name, stats.Score))
	if err := instance.SaveSubmission(output, net); err != nil {
		return res, err
	}
	log.WriteLog(fmt.Sprintf("[%s] Wrote %s in %v", inst.Name, output, time.Since(startTime)))

	return solveResult{
		input:  inst.Name,
		score:  stats.Score,
		bound:  bound,
		output: output,
	}, nil
}
