package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	logger  = stdlog.New(os.Stderr, "", stdlog.LstdFlags)
	logFile *os.File
	logMux  sync.Mutex
)

// InitLog 初始化日志文件，日志同时输出到标准输出和文件
func InitLog(filename string) error {
	logMux.Lock()
	defer logMux.Unlock()

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = file
	logger = stdlog.New(io.MultiWriter(os.Stdout, file), "", stdlog.LstdFlags)
	return nil
}

// SetOutput 将日志重定向到指定输出，并关闭已打开的日志文件
func SetOutput(w io.Writer) {
	logMux.Lock()
	defer logMux.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = stdlog.New(w, "", stdlog.LstdFlags)
}

// WriteLog 写入一行日志
func WriteLog(msg string) {
	logMux.Lock()
	defer logMux.Unlock()
	logger.Println(msg)
}

// CloseLog 关闭日志文件，之后的日志输出到标准错误
func CloseLog() {
	logMux.Lock()
	defer logMux.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = stdlog.New(os.Stderr, "", stdlog.LstdFlags)
}

// LogEnvironment 记录运行环境
func LogEnvironment() {
	WriteLog(fmt.Sprintf("Go: %s, OS/Arch: %s/%s, CPUs: %d, GOMAXPROCS: %d",
		runtime.Version(), runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), runtime.GOMAXPROCS(0)))
}

// LogSimParameters 记录模拟与优化参数
func LogSimParameters(iterations int, initialDuration, bump, damping float64, skipOptimize, keepUnused bool) {
	WriteLog("----------------------------------Parameters----------------------------------")
	WriteLog(fmt.Sprintf("Iterations: %d", iterations))
	WriteLog(fmt.Sprintf("Initial green duration: %.2f", initialDuration))
	WriteLog(fmt.Sprintf("Adjustment: (d + %.2f) * %.2f", bump, damping))
	WriteLog(fmt.Sprintf("Skip optimize: %v, Keep unused streets: %v", skipOptimize, keepUnused))
}
