// Package logger provides the process-wide structured logger for treectl.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance. It writes to stderr so command
// output on stdout stays machine-readable.
var Logger *log.Logger

// output is the destination shared by Logger and every component logger.
var output io.Writer = os.Stderr

func init() {
	Logger = log.New(output)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.WarnLevel)
}

// Configure sets level and destination. An empty level falls back to
// TREECTL_LOG_LEVEL, then to "warn".
func Configure(level string, logFile string, testMode bool) error {
	if level == "" {
		level = os.Getenv("TREECTL_LOG_LEVEL")
	}

	var w io.Writer = os.Stderr
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		w = file
	}

	output = w
	Logger = log.New(output)
	Logger.SetTimeFormat("")
	Logger.SetLevel(ParseLevel(level))

	if testMode {
		Logger.SetReportTimestamp(false)
	}

	return nil
}

// SetOutput redirects the global logger and loggers created afterwards by
// NewStyledLogger, keeping the level.
func SetOutput(w io.Writer) {
	level := Logger.GetLevel()
	output = w
	Logger = log.New(output)
	Logger.SetTimeFormat("")
	Logger.SetLevel(level)
}

// ParseLevel converts a level name to a log.Level. Unknown names map to warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// CommandExecution logs one command invocation.
func CommandExecution(id string, command string, args []string) {
	Debug("Executing command", "id", id, "command", command, "args", args)
}

// AttributeChange logs a successful attribute write.
func AttributeChange(path string, oldText string, newText string) {
	Debug("Attribute changed", "path", path, "old", oldText, "new", newText)
}

// NewStyledLogger creates a logger whose lines carry the given component
// prefix, e.g. "Config" or "Shell". It writes where the global logger
// writes and starts at its level, so create it after Configure.
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = levelStyle("DEBUG", "240")
	styles.Levels[log.InfoLevel] = levelStyle("INFO", "33")
	styles.Levels[log.WarnLevel] = levelStyle("WARN", "214")
	styles.Levels[log.ErrorLevel] = levelStyle("ERROR", "196")
	styles.Levels[log.FatalLevel] = levelStyle("FATAL", "88")

	styles.Keys["command"] = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	styles.Keys["path"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	componentLogger := log.NewWithOptions(output, log.Options{
		Prefix: prefix + " ",
	})
	componentLogger.SetStyles(styles)
	componentLogger.SetLevel(Logger.GetLevel())

	return componentLogger
}

func levelStyle(label string, background string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color("15"))
}
