// Package main provides the CLI entry point for scorecard-go.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/coachsight/scorecard-go/pkg/scorecard"
	"github.com/coachsight/scorecard-go/pkg/scorecard/models"
)

// report is the JSON envelope written for every parsed document.
type report struct {
	ReportID    string         `json:"report_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	File        string         `json:"file"`
	Result      *models.Result `json:"result"`
}

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "scorecard",
		Short: "Extract normalized call scorecards from tabular documents",
		Long: `scorecard parses call-evaluation documents (CSV/TSV, XLSX, legacy XLS),
detects their layout, and emits normalized per-call records as JSON.`,
	}
	root.AddCommand(parseCmd())
	root.AddCommand(formatsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// parse command
// --------------------------------------------------------------------------

func parseCmd() *cobra.Command {
	var (
		outputPath string
		pretty     bool
		scanWindow int
		signoffRow int
		delimiter  string
		mapPairs   []string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a scorecard document and emit a JSON report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			opts := scorecard.DefaultOptions()
			opts.Logger = logger
			if scanWindow > 0 {
				opts.ScanWindow = scanWindow
			}
			if signoffRow > 0 {
				opts.SignoffRow = signoffRow
			}
			if delimiter != "" {
				opts.Delimiter = parseDelimiterFlag(delimiter)
			}

			name := filepath.Base(inputPath)
			var res *models.Result
			if len(mapPairs) > 0 {
				mapping, err := parseMappingFlags(mapPairs)
				if err != nil {
					return err
				}
				res, err = scorecard.Remap(name, data, mapping, opts)
				if err != nil {
					return fmt.Errorf("remap failed: %w", err)
				}
			} else {
				res, err = scorecard.Extract(name, data, opts)
				if err != nil {
					return fmt.Errorf("extraction failed: %w", err)
				}
			}

			rep := report{
				ReportID:    uuid.NewString(),
				GeneratedAt: time.Now().UTC(),
				File:        name,
				Result:      res,
			}
			var jsonData []byte
			if pretty {
				jsonData, err = json.MarshalIndent(rep, "", "  ")
			} else {
				jsonData, err = json.Marshal(rep)
			}
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			} else {
				fmt.Println(string(jsonData))
			}

			if res.Format == models.FormatUnknown {
				fmt.Fprint(os.Stderr, scorecard.FormatGuide())
			}
			if res.Blocked() {
				for _, e := range res.Errors {
					logger.Error("validation", "detail", e)
				}
				os.Exit(2)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().IntVar(&scanWindow, "scan-window", envInt("SCORECARD_SCAN_WINDOW", 0), "Header scan window in rows (0 = default)")
	cmd.Flags().IntVar(&signoffRow, "signoff-row", envInt("SCORECARD_SIGNOFF_ROW", 0), "1-based sign-off data row (0 = default)")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", `Cell separator override for delimited text (use "\t" for tabs)`)
	cmd.Flags().StringArrayVar(&mapPairs, "map", nil, "Manual column mapping as key=column-index; repeatable, skips auto-mapping")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

// parseDelimiterFlag turns the flag text into a separator rune.
func parseDelimiterFlag(s string) rune {
	if s == `\t` || s == "tab" {
		return '\t'
	}
	return []rune(s)[0]
}

// parseMappingFlags turns repeated key=column-index pairs into a column
// mapping. Header texts are filled in by the engine from the document.
func parseMappingFlags(pairs []string) (models.ColumnMapping, error) {
	mapping := models.ColumnMapping{
		Fields:  make(map[string]string, len(pairs)),
		Columns: make(map[string]int, len(pairs)),
	}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return mapping, fmt.Errorf("invalid --map %q (want key=column-index)", pair)
		}
		col, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || col < 0 {
			return mapping, fmt.Errorf("invalid column index in --map %q", pair)
		}
		mapping.Columns[strings.TrimSpace(key)] = col
	}
	return mapping, nil
}

// --------------------------------------------------------------------------
// formats command
// --------------------------------------------------------------------------

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "Describe the supported scorecard layouts",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(scorecard.FormatGuide())
		},
	}
}

// envInt reads an integer environment default.
func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
