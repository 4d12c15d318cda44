package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/panglars/VeRForTe/schema"
)

// logger is the process-wide logger. Per-item loader and validator
// warnings all funnel through it so one malformed document never turns
// into more than a log line.
var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Logger exposes the shared logger for packages that need structured fields.
func Logger() *logrus.Logger {
	return logger
}

// LogWarn logs a warning, optionally with a cause.
func LogWarn(msg string, err error) {
	if err != nil {
		logger.WithError(err).Warn(msg)
		return
	}
	logger.Warn(msg)
}

// LogInfo logs an informational message.
func LogInfo(msg string) {
	logger.Info(msg)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	if err != nil {
		logger.WithError(err).Fatal(msg)
		return
	}
	logger.Fatal(msg)
}

// SelectOutputFile resolves the destination for writer output. An empty
// path means stdout; callers must not close stdout.
func SelectOutputFile(outputFile string) (*os.File, error) {
	if outputFile == "" {
		return os.Stdout, nil
	}
	file, err := os.Create(outputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", outputFile, err)
	}
	return file, nil
}

// Color variables for console output, roughly matching the site's badge
// palette: blue for full support down to red for calls for help.
var (
	goodColor  = color.New(color.FgBlue, color.Bold)
	basicColor = color.New(color.FgGreen)
	cfhColor   = color.New(color.FgRed, color.Bold)
	cftColor   = color.New(color.FgWhite)
	wipColor   = color.New(color.FgMagenta)
	cfiColor   = color.New(color.FgYellow)
)

// StatusLabel returns the status text for console output, colored when
// useColors is set. Empty statuses render as a dash.
func StatusLabel(s schema.Status, useColors bool) string {
	if s == "" {
		return "-"
	}
	if !useColors {
		return string(s)
	}
	switch s {
	case schema.GoodStatus:
		return goodColor.Sprint(s)
	case schema.BasicStatus:
		return basicColor.Sprint(s)
	case schema.CFHStatus:
		return cfhColor.Sprint(s)
	case schema.CFTStatus:
		return cftColor.Sprint(s)
	case schema.WIPStatus:
		return wipColor.Sprint(s)
	case schema.CFIStatus:
		return cfiColor.Sprint(s)
	default:
		return string(s)
	}
}
