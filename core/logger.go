package core

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// ProductionLogger implements Logger with structured output.
// It follows a layered configuration approach:
//  1. Explicit parameters (highest)
//  2. Environment variables (DC_LOG_LEVEL, DC_LOG_FORMAT, DC_DEBUG)
//  3. Defaults (text format, INFO level)
//
// Format is "text" for local development and "json" for log aggregation.
type ProductionLogger struct {
	level       string
	debug       bool
	serviceName string
	format      string
	output      io.Writer
	mu          sync.Mutex
}

// NewProductionLogger creates a structured logger for the named service
func NewProductionLogger(serviceName string) *ProductionLogger {
	level := os.Getenv("DC_LOG_LEVEL")
	if level == "" {
		level = "INFO"
	}

	debug := os.Getenv("DC_DEBUG") == "true" ||
		strings.EqualFold(level, "DEBUG")

	format := os.Getenv("DC_LOG_FORMAT")
	if format == "" {
		format = "text"
	}

	return &ProductionLogger{
		level:       strings.ToUpper(level),
		debug:       debug,
		serviceName: serviceName,
		format:      format,
		output:      os.Stdout,
	}
}

// SetOutput redirects log output. Tests capture output with a buffer.
func (l *ProductionLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w != nil {
		l.output = w
	}
}

// Info logs informational messages
func (l *ProductionLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

// Warn logs warning messages
func (l *ProductionLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

// Error logs error messages
func (l *ProductionLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}

// Debug logs debug messages (only when debug mode is enabled)
func (l *ProductionLogger) Debug(msg string, fields map[string]interface{}) {
	if !l.debug {
		return
	}
	l.log("DEBUG", msg, fields)
}

func (l *ProductionLogger) log(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().Format(time.RFC3339)

	if l.format == "json" {
		entry := map[string]interface{}{
			"ts":      ts,
			"level":   level,
			"service": l.serviceName,
			"msg":     msg,
		}
		for k, v := range fields {
			if err, ok := v.(error); ok {
				entry[k] = err.Error()
				continue
			}
			entry[k] = v
		}
		if data, err := json.Marshal(entry); err == nil {
			fmt.Fprintln(l.output, string(data))
		}
		return
	}

	// Text format: stable field ordering for readability
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] %s: %s", ts, level, l.serviceName, msg)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, fields[k])
	}
	fmt.Fprintln(l.output, sb.String())
}
