package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"groupstat/adapters/excel"
	"groupstat/app"
	"groupstat/domain/grouped"
	"groupstat/internal"
	"groupstat/internal/config"
	"groupstat/internal/errors"
)

func main() {
	loadDotEnv(internal.DefaultLogger)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := newRootCmd(cfg, internal.DefaultLogger)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.UserMessage(err))
		os.Exit(1)
	}
}

// loadDotEnv loads .env (or the given files) into the environment. A missing
// file is only reported at debug level so command output stays clean.
func loadDotEnv(logger *internal.Logger, files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	}
}

func newRootCmd(cfg *config.Config, logger *internal.Logger) *cobra.Command {
	calculator := app.NewCalculatorService(cfg.Calculator, logger)

	rootCmd := &cobra.Command{
		Use:           "groupstat-cli",
		Short:         "Mean, median and mode of grouped midpoint/frequency data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newCalcCmd(calculator, cfg.Import, logger),
		newModesCmd(calculator),
	)
	return rootCmd
}

func newCalcCmd(calculator *app.CalculatorService, importCfg config.ImportConfig, logger *internal.Logger) *cobra.Command {
	var mode string
	var rowSpecs []string
	var file string
	var sheet string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute mean, median or mode from midpoint/frequency rows",
		Long: `Compute a measure of central tendency from grouped data.

Rows are given as midpoint[:frequency]. A missing, zero, negative or
non-numeric frequency counts as 1; rows without a numeric midpoint are skipped.
Rows may also be read from an .xlsx or .csv file with midpoint and frequency
columns; --row values are appended after the file's rows.

Example: groupstat-cli calc --mode median --row 5:1 --row 10:2 --row 15:1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var calc *app.Calculation
			var err error
			if file != "" && len(rowSpecs) == 0 {
				reader := excel.NewRowReader(excel.ReaderConfig{FilePath: file, Sheet: sheet}, logger)
				calc, err = calculator.CalculateFrom(cmd.Context(), mode, reader)
			} else {
				var rows []grouped.RawRow
				rows, err = collectRows(cmd.Context(), file, sheet, rowSpecs, logger)
				if err == nil {
					calc, err = calculator.Calculate(cmd.Context(), app.CalculationRequest{Mode: mode, Rows: rows})
				}
			}
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), calc)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderCalculation(calc))
			return err
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", calculator.DefaultMode(), "Measure to compute: mean|median|mode")
	cmd.Flags().StringArrayVarP(&rowSpecs, "row", "r", nil, "Row as midpoint[:frequency] (repeatable)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read rows from an .xlsx or .csv file")
	cmd.Flags().StringVar(&sheet, "sheet", importCfg.Sheet, "Worksheet to read from .xlsx files")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")

	return cmd
}

func newModesCmd(calculator *app.CalculatorService) *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the supported modes and how each uses the input",
		Long:  `List mean, median and mode with a short explanation of which columns each one reads.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderModes(calculator.Modes(), calculator.DefaultMode()))
			return err
		},
	}
}

func collectRows(ctx context.Context, file, sheet string, specs []string, logger *internal.Logger) ([]grouped.RawRow, error) {
	var rows []grouped.RawRow
	if file != "" {
		reader := excel.NewRowReader(excel.ReaderConfig{FilePath: file, Sheet: sheet}, logger)
		fileRows, err := reader.ReadRows(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", file)
		}
		rows = append(rows, fileRows...)
	}
	for _, spec := range specs {
		rows = append(rows, parseRowSpec(spec))
	}
	return rows, nil
}

// parseRowSpec splits "10.5:4" (or "10.5,4") into its two text cells.
// Cells are left unparsed; the normalizer decides what they mean.
func parseRowSpec(spec string) grouped.RawRow {
	sep := strings.IndexAny(spec, ":,")
	if sep < 0 {
		return grouped.RawRow{Midpoint: spec}
	}
	return grouped.RawRow{Midpoint: spec[:sep], Frequency: spec[sep+1:]}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
