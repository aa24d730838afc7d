package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

var (
	nullWriter   = &NullWriter{}
	currentLevel = INFO
	Error        *log.Logger
	Warn         *log.Logger
	Info         *log.Logger
	Debug        *log.Logger
	Trace        *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

type NullWriter struct {
	io.Writer
}

func (s *NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// Loggers discard everything until Initialize is called so that
// packages can log from tests without any setup.
func init() {
	setWriters(-1, os.Stderr, os.Stdout)
}

func Initialize(logLevel LogLevel) {
	log.Printf("Initialize loggers: '%s'", logLevel.String())
	setWriters(logLevel, os.Stderr, os.Stdout)
}

// InitializeWithWriter routes all enabled levels to the given writer.
func InitializeWithWriter(logLevel LogLevel, writer io.Writer) {
	setWriters(logLevel, writer, writer)
}

func IsLogLevel(logLevel LogLevel) bool {
	return currentLevel >= logLevel
}

func setWriters(logLevel LogLevel, errorOut io.Writer, out io.Writer) {
	currentLevel = logLevel

	var errorWriter io.Writer = nullWriter
	var warnWriter io.Writer = nullWriter
	var infoWriter io.Writer = nullWriter
	var debugWriter io.Writer = nullWriter
	var traceWriter io.Writer = nullWriter
	if logLevel >= ERROR {
		errorWriter = errorOut
	}
	if logLevel >= WARN {
		warnWriter = out
	}
	if logLevel >= INFO {
		infoWriter = out
	}
	if logLevel >= DEBUG {
		debugWriter = out
	}
	if logLevel >= TRACE {
		traceWriter = out
	}

	Error = log.New(errorWriter, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	Warn = log.New(warnWriter, "WARN:  ", log.Ldate|log.Ltime|log.Lshortfile)
	Info = log.New(infoWriter, "INFO:  ", log.Ldate|log.Ltime|log.Lshortfile)
	Debug = log.New(debugWriter, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)
	Trace = log.New(traceWriter, "TRACE: ", log.Ldate|log.Ltime|log.Lshortfile)
}
