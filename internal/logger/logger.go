package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	NONE
)

var (
	level     = INFO
	stdLogger = log.New(os.Stderr, "[notekw] ", log.LstdFlags)
	logFile   *os.File
)

// ParseLevel maps a config string to a LogLevel. Unknown values map to INFO.
func ParseLevel(levelStr string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	case "none", "off":
		return NONE
	default:
		return INFO
	}
}

// Init sets the level and, when logfilePath is non-empty, tees output into that file.
// A log file opened by an earlier Init is closed.
func Init(logfilePath string, levelStr string) error {
	level = ParseLevel(levelStr)

	var f *os.File
	if logfilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logfilePath), 0o755); err != nil {
			return err
		}
		var err error
		f, err = os.OpenFile(logfilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		stdLogger.SetOutput(io.MultiWriter(os.Stderr, f))
	} else {
		stdLogger.SetOutput(os.Stderr)
	}
	closeLogFile()
	logFile = f
	return nil
}

// Close releases the log file, if any, and sends output back to stderr.
func Close() error {
	stdLogger.SetOutput(os.Stderr)
	return closeLogFile()
}

func closeLogFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// SetOutput redirects log output. Tests use it to capture or discard logs.
func SetOutput(w io.Writer) { stdLogger.SetOutput(w) }

// SetLevel changes the active level.
func SetLevel(l LogLevel) { level = l }

func Debug(msg string, args ...any) {
	if level <= DEBUG {
		stdLogger.Printf("[DEBUG] "+msg, args...)
	}
}

func Info(msg string, args ...any) {
	if level <= INFO {
		stdLogger.Printf("[INFO] "+msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if level <= WARN {
		stdLogger.Printf("[WARN] "+msg, args...)
	}
}

func Error(msg string, args ...any) {
	if level <= ERROR {
		stdLogger.Printf("[ERROR] "+msg, args...)
	}
}
