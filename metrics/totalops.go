package metrics

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultTotalOps is used when no perf_test log gives the real counts:
// 1,000,000 iterations over 50 strings.
const DefaultTotalOps int64 = 50_000_000

var (
	iterationMarkers = []string{"iteration", "iterasyon"}
	stringMarkers    = []string{"string count", "string sayısı"}

	// A run of digits, optionally grouped with thousands separators.
	countPattern = regexp.MustCompile(`\d+(?:[,_.]\d{3})*`)
)

// TotalOps estimates the number of comparisons the string benchmark ran
// from the first candidate log that carries both an iteration count and a
// string count. Missing or unreadable logs fall back to DefaultTotalOps.
func TotalOps(paths ...string) int64 {
	for _, path := range paths {
		ops, err := totalOpsFromFile(path)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("Perf log not usable")
			continue
		}
		return ops
	}
	return DefaultTotalOps
}

func totalOpsFromFile(path string) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var iterations, strs int64
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.ToLower(scanner.Text())
		if containsAny(line, iterationMarkers) {
			if n, ok := firstCount(line); ok {
				iterations = n
			}
		}
		if containsAny(line, stringMarkers) {
			if n, ok := firstCount(line); ok {
				strs = n
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan perf log: %w", err)
	}
	if iterations <= 0 || strs <= 0 {
		return 0, fmt.Errorf("perf log lacks counts (iterations=%d strings=%d)", iterations, strs)
	}
	if strs > math.MaxInt64/iterations {
		return 0, fmt.Errorf("perf log counts overflow (iterations=%d strings=%d)", iterations, strs)
	}
	return iterations * strs, nil
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func firstCount(line string) (int64, bool) {
	m := countPattern.FindString(line)
	if m == "" {
		return 0, false
	}
	m = strings.NewReplacer(",", "", "_", "", ".", "").Replace(m)
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
