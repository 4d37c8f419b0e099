package onprem

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/superb-ai/onprem-go/pkg/transport"
)

// Logger is a minimal printf-style logging interface. It is satisfied by
// *log.Logger.
//
// Prefer StructuredLogger. A printf-style logger can be wrapped with
// WrapPrintfLogger.
type Logger interface {
	// Printf logs a formatted message.
	Printf(format string, v ...any)
}

// StructuredLogger provides leveled, key/value logging. It is compatible
// with log/slog through NewSlogAdapter.
//
//	client, _ := onprem.New(
//	    onprem.WithEndpoint(endpoint),
//	    onprem.WithStructuredLogger(onprem.NewSlogAdapter(slog.Default())),
//	)
type StructuredLogger interface {
	// Debug logs a debug-level message with optional key-value pairs.
	Debug(msg string, args ...any)
	// Info logs an info-level message with optional key-value pairs.
	Info(msg string, args ...any)
	// Warn logs a warning-level message with optional key-value pairs.
	Warn(msg string, args ...any)
	// Error logs an error-level message with optional key-value pairs.
	Error(msg string, args ...any)
}

// Metrics is an optional interface for SDK telemetry. Counter names are
// the transport.Metric* constants.
type Metrics = transport.Metrics

var _ transport.Logger = StructuredLogger(nil)

// printfLoggerWrapper wraps a printf-style logger to implement StructuredLogger.
type printfLoggerWrapper struct {
	logger Logger
}

// WrapPrintfLogger wraps a printf-style Logger (like *log.Logger) to implement
// StructuredLogger. All messages are logged at the same level with formatted
// key-value pairs appended.
func WrapPrintfLogger(l Logger) StructuredLogger {
	return &printfLoggerWrapper{logger: l}
}

// WrapStdLogger wraps a standard library *log.Logger to implement
// StructuredLogger.
func WrapStdLogger(l *log.Logger) StructuredLogger {
	return &printfLoggerWrapper{logger: &defaultLogger{logger: l}}
}

func (w *printfLoggerWrapper) Debug(msg string, args ...any) {
	w.logger.Printf("%s", "[DEBUG] "+msg+formatArgs(args))
}

func (w *printfLoggerWrapper) Info(msg string, args ...any) {
	w.logger.Printf("%s", "[INFO] "+msg+formatArgs(args))
}

func (w *printfLoggerWrapper) Warn(msg string, args ...any) {
	w.logger.Printf("%s", "[WARN] "+msg+formatArgs(args))
}

func (w *printfLoggerWrapper) Error(msg string, args ...any) {
	w.logger.Printf("%s", "[ERROR] "+msg+formatArgs(args))
}

var _ StructuredLogger = (*printfLoggerWrapper)(nil)

// defaultLogger wraps the standard library logger.
type defaultLogger struct {
	logger *log.Logger
}

func (l *defaultLogger) Printf(format string, v ...any) {
	l.logger.Printf(format, v...)
}

// formatArgs formats structured logging arguments as a string.
func formatArgs(args []any) string {
	if len(args) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(" |")
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
		} else {
			fmt.Fprintf(&b, " %v=(missing)", args[i])
		}
	}
	return b.String()
}

// NopLogger is a logger that discards all log messages.
type NopLogger struct{}

// Printf implements Logger.Printf.
func (NopLogger) Printf(format string, v ...any) {}

// Debug implements StructuredLogger.Debug.
func (NopLogger) Debug(msg string, args ...any) {}

// Info implements StructuredLogger.Info.
func (NopLogger) Info(msg string, args ...any) {}

// Warn implements StructuredLogger.Warn.
func (NopLogger) Warn(msg string, args ...any) {}

// Error implements StructuredLogger.Error.
func (NopLogger) Error(msg string, args ...any) {}

var (
	_ Logger           = NopLogger{}
	_ StructuredLogger = NopLogger{}
)

// MaskAuthHeader masks an Authorization header value for safe logging.
func MaskAuthHeader(header string) string {
	if scheme, _, ok := strings.Cut(header, " "); ok && (scheme == "Basic" || scheme == "Bearer") {
		return scheme + " ********"
	}
	return "********"
}

// SlogAdapter adapts a slog.Logger to the StructuredLogger interface.
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	client, _ := onprem.New(
//	    onprem.WithEndpoint(endpoint),
//	    onprem.WithStructuredLogger(onprem.NewSlogAdapter(logger)),
//	)
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter wrapping the given slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements StructuredLogger.Debug.
func (a *SlogAdapter) Debug(msg string, args ...any) {
	a.logger.Debug(msg, args...)
}

// Info implements StructuredLogger.Info.
func (a *SlogAdapter) Info(msg string, args ...any) {
	a.logger.Info(msg, args...)
}

// Warn implements StructuredLogger.Warn.
func (a *SlogAdapter) Warn(msg string, args ...any) {
	a.logger.Warn(msg, args...)
}

// Error implements StructuredLogger.Error.
func (a *SlogAdapter) Error(msg string, args ...any) {
	a.logger.Error(msg, args...)
}

// Printf implements Logger.Printf. Logs at Info level.
func (a *SlogAdapter) Printf(format string, v ...any) {
	a.logger.Info(fmt.Sprintf(format, v...))
}

// WithGroup returns a new SlogAdapter with a log group prefix.
func (a *SlogAdapter) WithGroup(name string) *SlogAdapter {
	return &SlogAdapter{logger: a.logger.WithGroup(name)}
}

// With returns a new SlogAdapter with the given attributes added.
func (a *SlogAdapter) With(args ...any) *SlogAdapter {
	return &SlogAdapter{logger: a.logger.With(args...)}
}
