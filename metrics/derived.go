package metrics

import (
	"fmt"
	"math"
	"strconv"
)

const microsPerSecond = 1_000_000.0

// Speedup returns baseline/improved. It is undefined unless improved is
// strictly positive.
func Speedup(baseline, improved float64) (float64, bool) {
	if !(improved > 0) || math.IsNaN(baseline) {
		return 0, false
	}
	return baseline / improved, true
}

// Throughput converts a duration in microseconds into operations per second.
func Throughput(totalOps int64, durationMicros float64) (float64, bool) {
	if !(durationMicros > 0) || math.IsInf(durationMicros, 0) {
		return 0, false
	}
	return float64(totalOps) / (durationMicros / microsPerSecond), true
}

// MemorySplit returns each part's share of the total in percent.
func MemorySplit(parts ...float64) ([]float64, bool) {
	var total float64
	for _, p := range parts {
		if p < 0 || math.IsNaN(p) {
			return nil, false
		}
		total += p
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return nil, false
	}
	shares := make([]float64, len(parts))
	for i, p := range parts {
		shares[i] = p / total * 100
	}
	return shares, true
}

// Human formats a value with its unit for chart annotations.
func Human(value float64, unit string) string {
	switch unit {
	case "microseconds", "µs", "us":
		if value >= 1000 {
			return fmt.Sprintf("%.1f ms", value/1000)
		}
		return fmt.Sprintf("%.0f µs", value)
	case "bytes":
		if value >= 1024*1024 {
			return fmt.Sprintf("%.2f MiB", value/1024/1024)
		}
		if value >= 1024 {
			return fmt.Sprintf("%.1f KiB", value/1024)
		}
		return fmt.Sprintf("%.0f B", value)
	}
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if unit == "" {
		return s
	}
	return s + " " + unit
}
