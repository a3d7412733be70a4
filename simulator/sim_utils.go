package simulator

import (
	"fmt"
	"signalSim/log"
	"signalSim/recorder"
	"time"
)

// WriteData 将recorder中缓存的轮次和拥堵数据追加写入CSV
// dataFiles为nil时（记录关闭）不做任何事
func WriteData(dataFiles map[string]string) error {
	if roundFile, ok := dataFiles["round"]; ok {
		if err := recorder.WriteToRoundDataCSV(roundFile); err != nil {
			return err
		}
	}
	if congestionFile, ok := dataFiles["congestion"]; ok {
		if err := recorder.WriteToCongestionDataCSV(congestionFile); err != nil {
			return err
		}
	}
	return nil
}

// FinishSimulation 完成全部求解，写入最后的数据
// 记录写入操作的时间消耗
func FinishSimulation(dataFiles map[string]string) error {
	if len(dataFiles) == 0 {
		return nil
	}
	log.WriteLog("Writing final data...")

	startTime := time.Now()
	if err := WriteData(dataFiles); err != nil {
		return fmt.Errorf("writing final data: %w", err)
	}

	log.WriteLog(fmt.Sprintf("Final data write completed in %v", time.Since(startTime)))
	return nil
}
