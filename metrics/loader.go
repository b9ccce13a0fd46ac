package metrics

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Column names of the metrics CSV header.
const (
	ColumnModule = "module"
	ColumnFile   = "file"
	ColumnBinary = "binary"
	ColumnMetric = "metric"
	ColumnValue  = "value"
	ColumnUnit   = "unit"
)

// Load reads the metrics CSV at path. Rows keep their input order.
// A missing file yields an error wrapping ErrSourceNotFound.
func Load(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to open metrics file: %w", err)
	}
	defer file.Close()

	records, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// Read parses a metrics CSV stream with a header row. Columns are matched by
// header name, so their order does not matter; absent columns read as empty.
func Read(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1
	// A stray quote inside a field is kept as text.
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		columns[name] = i
	}
	field := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", line, err)
		}

		raw := field(row, ColumnValue)
		value := ParseValue(raw)
		if !value.IsNumeric() {
			log.Debug().Int("row", line).Str("value", raw).Msg("Keeping non-numeric value as text")
		}

		records = append(records, Record{
			Module: field(row, ColumnModule),
			File:   field(row, ColumnFile),
			Binary: field(row, ColumnBinary),
			Metric: field(row, ColumnMetric),
			Value:  value,
			Unit:   field(row, ColumnUnit),
		})
	}
	return records, nil
}
