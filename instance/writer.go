package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"signalSim/element"

	"github.com/samber/lo"
)

// WriteSubmission 按提交格式输出所有非空的信号灯方案
//
// 时长写入时截断取整，与模拟时向上取整不同；
// 这与原有提交文件保持一致。
func WriteSubmission(w io.Writer, net *element.Network) error {
	scheduled := lo.Filter(net.Intersections(), func(inter *element.Intersection, _ int) bool {
		return !inter.Schedule().IsEmpty()
	})

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(scheduled))
	for _, inter := range scheduled {
		entries := inter.Schedule().Entries()
		fmt.Fprintln(bw, inter.ID())
		fmt.Fprintln(bw, len(entries))
		for _, e := range entries {
			fmt.Fprintf(bw, "%s %d\n", e.Street, element.TruncatedDuration(e.Duration))
		}
	}
	return bw.Flush()
}

// SaveSubmission 将方案写入文件，必要时创建目录
func SaveSubmission(path string, net *element.Network) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating submission: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing submission: %w", cerr)
		}
	}()

	if err := WriteSubmission(file, net); err != nil {
		return fmt.Errorf("writing submission: %w", err)
	}
	return nil
}
