package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

// Color variables for console output.
var (
	MetColor    = color.New(color.FgGreen, color.Bold) // goal reached
	NearColor   = color.New(color.FgCyan)              // on track
	BehindColor = color.New(color.FgYellow)            // needs attention
	AtRiskColor = color.New(color.FgRed, color.Bold)   // unlikely to recover this month
)

// GetPlainLabel returns a plain text label for a completion level.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(level schema.CompletionLevel) string {
	return string(level)
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(level schema.CompletionLevel) string {
	text := GetPlainLabel(level)

	switch level {
	case schema.MetLevel:
		return MetColor.Sprint(text)
	case schema.NearLevel:
		return NearColor.Sprint(text)
	case schema.BehindLevel:
		return BehindColor.Sprint(text)
	case schema.AtRiskLevel:
		return AtRiskColor.Sprint(text)
	default: // "Unknown"
		return text
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
