package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/ramodel/internal/app"
)

// studyPathEnv names the environment variable consulted when no study path
// is given on the command line.
const studyPathEnv = "STUDY_PATH"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("ramodel", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
ramodel - Evaluates reconstructability analysis models.

Usage:
  ramodel [options] [STUDY_PATH]

Arguments:
  STUDY_PATH
    Path to a single .hcl file or a directory containing .hcl files.
    Falls back to the STUDY_PATH environment variable.

Options:
`)
		flagSet.PrintDefaults()
	}

	studyFlag := flagSet.String("study", "", "Path to the study file or directory.")
	sFlag := flagSet.String("s", "", "Path to the study file or directory (shorthand).")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check and metrics server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	outputFlag := flagSet.String("output", app.OutputText, "Report format. Options: 'text' or 'yaml'.")
	metricsFileFlag := flagSet.String("metrics-file", "", "Write Prometheus metrics to this file after the run.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var path string
	switch {
	case *studyFlag != "":
		path = *studyFlag
	case *sFlag != "":
		path = *sFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	default:
		path = os.Getenv(studyPathEnv)
	}
	slog.Debug("Study path determined.", "path", path)

	if path == "" {
		slog.Debug("No study path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		StudyPath:       path,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		OutputFormat:    strings.ToLower(*outputFlag),
		HealthcheckPort: *healthPortFlag,
		MetricsFile:     *metricsFileFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
