package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"groupstat/domain/grouped"
	"groupstat/internal"
	"groupstat/ports"
)

var _ ports.RowSource = (*RowReader)(nil)

var (
	midpointHeaders  = map[string]bool{"midpoint": true, "mid": true, "x": true, "class midpoint": true}
	frequencyHeaders = map[string]bool{"frequency": true, "freq": true, "f": true, "count": true}
)

// RowReader reads midpoint/frequency rows from an .xlsx or .csv file.
// It implements ports.RowSource.
type RowReader struct {
	config   ReaderConfig
	fileType string // "xlsx" or "csv"
	logger   *internal.Logger
}

// NewRowReader creates a reader; the file type follows the extension.
// A nil logger uses internal.DefaultLogger.
func NewRowReader(config ReaderConfig, logger *internal.Logger) *RowReader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if config.Sheet == "" {
		config.Sheet = DefaultReaderConfig().Sheet
	}
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		fileType = "csv"
	}
	return &RowReader{config: config, fileType: fileType, logger: logger.With("RowReader")}
}

// Name returns the file path being read
func (r *RowReader) Name() string {
	return r.config.FilePath
}

// ReadRows reads every data row of the file
func (r *RowReader) ReadRows(ctx context.Context) ([]grouped.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.config.FilePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.config.FilePath)
	}

	var cells [][]string
	var err error
	switch r.fileType {
	case "csv":
		cells, err = r.readCSV()
	default:
		cells, err = r.readExcel()
	}
	if err != nil {
		return nil, err
	}
	return toRows(cells), nil
}

func (r *RowReader) readExcel() ([][]string, error) {
	start := time.Now()
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.config.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.config.Sheet, err)
	}
	r.logger.Debug("%s read in %.2fms (%d rows)", r.config.Sheet, float64(time.Since(start).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

func (r *RowReader) readCSV() ([][]string, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// toRows picks the midpoint and frequency columns. A first row naming both
// columns is treated as a header; otherwise columns 0 and 1 are used.
func toRows(cells [][]string) []grouped.RawRow {
	if len(cells) == 0 {
		return nil
	}

	midCol, freqCol := 0, 1
	body := cells
	if m, f, ok := headerColumns(cells[0]); ok {
		midCol, freqCol = m, f
		body = cells[1:]
	}

	rows := make([]grouped.RawRow, 0, len(body))
	for _, cell := range body {
		rows = append(rows, grouped.RawRow{
			Midpoint:  column(cell, midCol),
			Frequency: column(cell, freqCol),
		})
	}
	return rows
}

func headerColumns(header []string) (mid, freq int, ok bool) {
	mid, freq = -1, -1
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		switch {
		case midpointHeaders[name] && mid < 0:
			mid = i
		case frequencyHeaders[name] && freq < 0:
			freq = i
		}
	}
	return mid, freq, mid >= 0 && freq >= 0
}

func column(cells []string, i int) string {
	if i < len(cells) {
		return strings.TrimSpace(cells[i])
	}
	return ""
}
