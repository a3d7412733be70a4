package main

import (
	"fmt"
	"io"

	"signalSim/instance"
	"signalSim/simulator"
)

// runScore 模拟已有的提交文件并输出得分
func runScore(w io.Writer, inputPath, submissionPath string) error {
	inst, err := instance.Load(inputPath)
	if err != nil {
		return err
	}
	if err := instance.LoadSubmission(submissionPath, inst.Network); err != nil {
		return err
	}

	stats := simulator.Run(inst.Network, inst.Cars, inst.Duration, inst.Bonus)
	fmt.Fprintf(w, "%s: score %d, finished cars %d/%d\n", inst.Name, stats.Score, stats.Finished, len(inst.Cars))
	return nil
}

// runBound 输出每个输入的理论得分上限及其总和
func runBound(w io.Writer, inputs []string) error {
	total := 0
	for _, path := range inputs {
		inst, err := instance.Load(path)
		if err != nil {
			return err
		}
		bound := simulator.TheoreticalBound(inst.Network, inst.Cars, inst.Duration, inst.Bonus)
		total += bound
		fmt.Fprintf(w, "%s: %d\n", inst.Name, bound)
	}
	if len(inputs) > 1 {
		fmt.Fprintf(w, "total: %d\n", total)
	}
	return nil
}
