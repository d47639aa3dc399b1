// Command csvdb loads a delimited text, XLSX, or Parquet file into a SQLite
// database file, validates the stored rows, and prints the full table.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/nao1215/csvdb"
	"github.com/nao1215/csvdb/internal/config"
	"github.com/nao1215/csvdb/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a YAML config file")
	tableName := flag.String("table", config.DefaultTableName, "destination table name")
	dbPath := flag.String("db", "", "destination database file (default: <input-stem>.db)")
	width := flag.Int("width", config.DefaultDisplayWidth, "report cell width in display characters")
	logLevel := flag.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", config.DefaultLogFormat, "log format (text, json)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return csvdb.ExitUnexpected
	}

	// Explicitly set flags win over config file and environment values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "table":
			cfg.TableName = *tableName
		case "db":
			cfg.DatabasePath = *dbPath
		case "width":
			cfg.DisplayWidth = *width
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat).With("run_id", uuid.NewString())

	input := flag.Arg(0)
	if input == "" {
		input, err = promptInputPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return csvdb.ExitUnexpected
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	job, err := csvdb.NewBuilder().
		SetInput(input).
		SetDatabasePath(cfg.DatabasePath).
		SetTableName(cfg.TableName).
		SetDisplayWidth(cfg.DisplayWidth).
		Build()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		fmt.Printf("Error: %v\n", err)
		return csvdb.ExitCode(err)
	}

	start := time.Now()
	logger.Info("run starting", "input", input, "table", cfg.TableName)

	result, err := job.Run(ctx)
	if err != nil {
		code := csvdb.ExitCode(err)
		logger.Error("run failed", "error", err, "exit_code", code, "elapsed", time.Since(start))
		if errors.Is(err, csvdb.ErrInputNotFound) {
			fmt.Printf("Error: File '%s' does not exist.\n", input)
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		return code
	}

	logger.Info("run complete",
		"input", result.InputPath,
		"database", result.DatabasePath,
		"table", result.TableName,
		"rows_loaded", result.RowsLoaded,
		"empty_rows", result.EmptyRows,
		"elapsed", time.Since(start))
	return csvdb.ExitOK
}

// promptInputPath asks for the input path on stdin when no positional
// argument was given.
func promptInputPath() (string, error) {
	fmt.Print("Enter the path to your CSV file: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input path: %w", err)
	}
	return strings.TrimSpace(line), nil
}
