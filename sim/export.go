package sim

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// csvHeader is the snapshot export schema. Missing top-k slots render as
// pid -1 with 0 cpu so every row has the same width.
var csvHeader = []string{
	"time_ms", "avg_cpu_util", "mem_kb", "slope_kb_per_ms", "forecast_kb",
	"top1_pid", "top1_cpu_ms", "top2_pid", "top2_cpu_ms", "top3_pid", "top3_cpu_ms",
	"hotspots",
}

// WriteCSV exports one row per snapshot to path, matching the tabular
// record contract consumed by external tooling.
func WriteCSV(path string, snapshots []Snapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, snap := range snapshots {
		if err := w.Write(snapshotRow(snap)); err != nil {
			return fmt.Errorf("writing csv row at t=%.1f: %w", snap.Time, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func snapshotRow(snap Snapshot) []string {
	row := []string{
		strconv.FormatFloat(snap.Time, 'f', 0, 64),
		strconv.FormatFloat(snap.AvgUtil, 'f', 3, 64),
		strconv.FormatFloat(snap.MemKB, 'f', 0, 64),
		strconv.FormatFloat(snap.Slope, 'f', 6, 64),
		strconv.FormatFloat(snap.ForecastKB, 'f', 0, 64),
	}
	for k := 0; k < 3; k++ {
		if k < len(snap.TopTasks) {
			row = append(row,
				strconv.Itoa(snap.TopTasks[k].PID),
				strconv.FormatFloat(snap.TopTasks[k].CPUMs, 'f', 0, 64))
		} else {
			row = append(row, "-1", "0")
		}
	}
	row = append(row, strconv.Itoa(len(snap.Hotspots)))
	return row
}
