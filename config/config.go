package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config 保存所有配置项的顶级结构
type Config struct {
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Solve      SolveConfig      `json:"solve" yaml:"solve"`
	Logging    LoggingConfig    `json:"logging" yaml:"logging"`
	Recorder   RecorderConfig   `json:"recorder" yaml:"recorder"`

	// 同时求解的输入文件数量，0表示使用GOMAXPROCS
	Workers int `json:"workers" yaml:"workers"`
}

// SimulationConfig 保存模拟与信号灯优化相关的配置项
type SimulationConfig struct {
	// 优化轮数，每轮执行一次完整模拟
	Iterations int `json:"iterations" yaml:"iterations"`

	// 初始绿灯时长
	InitialDuration float64 `json:"initialDuration" yaml:"initialDuration"`

	// 绿灯时长调整: newDuration = (oldDuration + Bump) * Damping
	Bump    float64 `json:"bump" yaml:"bump"`
	Damping float64 `json:"damping" yaml:"damping"`
}

// SolveConfig 保存求解流程相关的配置项
type SolveConfig struct {
	// 保留没有任何车辆经过的街道（默认会从信号灯方案中剔除）
	KeepUnused bool `json:"keepUnused" yaml:"keepUnused"`

	// 跳过优化，直接输出初始方案
	SkipOptimize bool `json:"skipOptimize" yaml:"skipOptimize"`

	OutputDir string `json:"outputDir" yaml:"outputDir"`
}

// LoggingConfig 保存日志记录相关的配置项
type LoggingConfig struct {
	LogDir string `json:"logDir" yaml:"logDir"`

	// 每隔多少轮输出一次优化日志，新的最高分总会输出
	IntervalWriteToLog int `json:"intervalWriteToLog" yaml:"intervalWriteToLog"`
}

// RecorderConfig 保存CSV数据记录相关的配置项
type RecorderConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	DataDir string `json:"dataDir" yaml:"dataDir"`
}

const (
	DefaultIterations      = 1000
	DefaultInitialDuration = 1.0
	DefaultBump            = 1.0
	DefaultDamping         = 0.8
)

var globalConfig *Config

// Default 返回填充了默认值的配置
func Default() *Config {
	config := &Config{
		Recorder: RecorderConfig{Enabled: true},
	}
	setDefaults(config)
	return config
}

// LoadConfig loads configuration from the specified JSON or YAML file
func LoadConfig(filename string) error {
	config, err := Load(filename)
	if err != nil {
		return err
	}
	globalConfig = config
	return nil
}

// Load 读取配置文件但不修改全局配置
// 根据扩展名选择解码方式: .yaml/.yml 使用YAML，其余按JSON处理
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := &Config{
		Recorder: RecorderConfig{Enabled: true},
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config JSON: %w", err)
		}
	}

	setDefaults(config)
	return config, nil
}

func setDefaults(config *Config) {
	// 模拟参数默认值
	if config.Simulation.Iterations <= 0 {
		config.Simulation.Iterations = DefaultIterations
	}
	if config.Simulation.InitialDuration <= 0 {
		config.Simulation.InitialDuration = DefaultInitialDuration
	}
	if config.Simulation.Bump <= 0 {
		config.Simulation.Bump = DefaultBump
	}
	// 衰减系数必须在(0, 1]之间
	if config.Simulation.Damping <= 0 || config.Simulation.Damping > 1 {
		config.Simulation.Damping = DefaultDamping
	}

	if config.Solve.OutputDir == "" {
		config.Solve.OutputDir = "output"
	}

	if config.Logging.LogDir == "" {
		config.Logging.LogDir = "log"
	}
	if config.Logging.IntervalWriteToLog <= 0 {
		config.Logging.IntervalWriteToLog = 1
	}

	if config.Recorder.DataDir == "" {
		config.Recorder.DataDir = "data"
	}

	if config.Workers < 0 {
		config.Workers = 0
	}
}

// SetConfig 替换全局配置
func SetConfig(config *Config) {
	globalConfig = config
}

// GetConfig returns the global configuration instance
// 未加载配置文件时返回默认配置
func GetConfig() *Config {
	if globalConfig == nil {
		globalConfig = Default()
	}
	return globalConfig
}
