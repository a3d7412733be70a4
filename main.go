package main

import (
	"os"

	"signalSim/config"

	"github.com/spf13/cobra"
)

func main() {
	var configFile string

	rootCmd := &cobra.Command{
		Use:          "signalSim",
		Short:        "Traffic signal scheduling simulator and optimizer",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// 加载配置文件
			if configFile == "" {
				config.SetConfig(config.Default())
				return nil
			}
			return config.LoadConfig(configFile)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "JSON or YAML config file")

	rootCmd.AddCommand(solveCmd())
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(boundCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func solveCmd() *cobra.Command {
	var (
		iterations int
		outputDir  string
		noOptimize bool
		keepUnused bool
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "solve [input...]",
		Short: "Build, optimize and write a signal schedule for each input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetConfig()

			// 命令行参数覆盖配置文件
			flags := cmd.Flags()
			if flags.Changed("iterations") {
				cfg.Simulation.Iterations = iterations
			}
			if flags.Changed("output") {
				cfg.Solve.OutputDir = outputDir
			}
			if flags.Changed("no-optimize") {
				cfg.Solve.SkipOptimize = noOptimize
			}
			if flags.Changed("keep-unused") {
				cfg.Solve.KeepUnused = keepUnused
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}

			return runSolve(cfg, args)
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "n", config.DefaultIterations, "optimization rounds per input")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "output", "directory for submission files")
	cmd.Flags().BoolVar(&noOptimize, "no-optimize", false, "write the initial schedule without optimizing")
	cmd.Flags().BoolVar(&keepUnused, "keep-unused", false, "keep streets no car uses in the schedules")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "inputs solved concurrently (0 = GOMAXPROCS)")
	return cmd
}

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [input] [submission]",
		Short: "Simulate a submission against an input and print its score",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func boundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bound [input...]",
		Short: "Print the score upper bound ignoring lights and queues",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBound(cmd.OutOrStdout(), args)
		},
	}
}
