package recorder

import (
	"slices"
	"strconv"
	"sync"

	"github.com/samber/lo"
)

var (
	congestionDataCache [][]string
	congestionDataMutex sync.Mutex
)

// RecordCongestionData 缓存一次模拟中各街道的累计拥堵计数
// 按街道名排序，保证同一输入的输出稳定
func RecordCongestionData(input string, congestion map[string]int64) {
	streets := lo.Keys(congestion)
	slices.Sort(streets)

	rows := make([][]string, 0, len(streets))
	for _, street := range streets {
		rows = append(rows, []string{
			input,
			street,
			strconv.FormatInt(congestion[street], 10),
		})
	}

	congestionDataMutex.Lock()
	defer congestionDataMutex.Unlock()
	congestionDataCache = append(congestionDataCache, rows...)
}

// InitCongestionDataCSV 创建拥堵数据文件并写入表头
func InitCongestionDataCSV(filename string) error {
	return initializeCSV(filename, []string{"Input", "Street", "Congestion"})
}

// WriteToCongestionDataCSV 将缓存的拥堵数据追加到文件并清空缓存
func WriteToCongestionDataCSV(filename string) error {
	congestionDataMutex.Lock()
	defer congestionDataMutex.Unlock()
	if len(congestionDataCache) == 0 {
		return nil
	}
	if err := appendToCSV(filename, congestionDataCache); err != nil {
		return err
	}
	congestionDataCache = nil
	return nil
}
