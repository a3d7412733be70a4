package recorder

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
)

var (
	roundDataCache [][]string = make([][]string, 0)
	roundDataMutex sync.Mutex = sync.Mutex{}
	recordIndex    int64      = 0 // 递增的唯一索引
)

// RecordRoundData 缓存一轮优化的得分数据
func RecordRoundData(input string, round, score, best int, ratio float64) {
	roundDataMutex.Lock()
	defer roundDataMutex.Unlock()
	roundDataCache = append(roundDataCache, getRoundData(input, round, score, best, ratio))
}

func getRoundData(input string, round, score, best int, ratio float64) []string {
	idx := atomic.AddInt64(&recordIndex, 1)

	return []string{
		strconv.FormatInt(idx, 10), // 唯一索引
		input,                      // 输入名
		strconv.Itoa(round),        // 轮次
		strconv.Itoa(score),        // 本轮得分
		strconv.Itoa(best),         // 历史最高分
		fmt.Sprintf("%.4f", ratio), // 本轮得分/最高分
	}
}

// InitRoundDataCSV 创建轮次数据文件并写入表头
func InitRoundDataCSV(filename string) error {
	header := []string{
		"Record ID", "Input", "Round", "Score", "Best", "Ratio",
	}
	return initializeCSV(filename, header)
}

// WriteToRoundDataCSV 将缓存的轮次数据追加到文件并清空缓存
func WriteToRoundDataCSV(filename string) error {
	roundDataMutex.Lock()
	defer roundDataMutex.Unlock()
	if len(roundDataCache) == 0 {
		return nil
	}
	if err := appendToCSV(filename, roundDataCache); err != nil {
		return err
	}
	roundDataCache = make([][]string, 0)
	return nil
}
