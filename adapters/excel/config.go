package excel

// ReaderConfig holds configuration for spreadsheet row import
type ReaderConfig struct {
	FilePath string `json:"file_path"`
	// Sheet is the worksheet read from .xlsx files; ignored for .csv.
	Sheet string `json:"sheet"`
}

// DefaultReaderConfig returns sensible defaults for spreadsheet import
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		Sheet: "Sheet1",
	}
}
