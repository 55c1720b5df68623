package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/casetools/naming/extractor"
	"github.com/rs/zerolog"
)

// NewLogger returns the logger used by command handlers. With verbose off it
// discards everything; with verbose on it writes human-readable debug output
// to stderr so stdout stays clean for piped results.
func NewLogger(verbose bool) extractor.Logger {
	if !verbose {
		return extractor.NopLogger{}
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
	return &zerologAdapter{logger: zl}
}

// zerologAdapter adapts a zerolog.Logger to the extractor.Logger interface.
type zerologAdapter struct {
	logger zerolog.Logger
}

var _ extractor.Logger = (*zerologAdapter)(nil)

// Debug implements extractor.Logger.
func (a *zerologAdapter) Debug(msg string, attrs ...any) {
	logAttrs(a.logger.Debug(), attrs).Msg(msg)
}

// Info implements extractor.Logger.
func (a *zerologAdapter) Info(msg string, attrs ...any) {
	logAttrs(a.logger.Info(), attrs).Msg(msg)
}

// Warn implements extractor.Logger.
func (a *zerologAdapter) Warn(msg string, attrs ...any) {
	logAttrs(a.logger.Warn(), attrs).Msg(msg)
}

// Error implements extractor.Logger.
func (a *zerologAdapter) Error(msg string, attrs ...any) {
	logAttrs(a.logger.Error(), attrs).Msg(msg)
}

// With implements extractor.Logger.
func (a *zerologAdapter) With(attrs ...any) extractor.Logger {
	ctx := a.logger.With()
	for i := 0; i+1 < len(attrs); i += 2 {
		ctx = ctx.Interface(attrKey(attrs[i]), attrs[i+1])
	}
	return &zerologAdapter{logger: ctx.Logger()}
}

// logAttrs attaches key/value attribute pairs to the event. A trailing key
// without a value is logged under the key itself.
func logAttrs(event *zerolog.Event, attrs []any) *zerolog.Event {
	for i := 0; i < len(attrs); i += 2 {
		if i+1 >= len(attrs) {
			event = event.Interface("attr", attrs[i])
			break
		}
		event = event.Interface(attrKey(attrs[i]), attrs[i+1])
	}
	return event
}

func attrKey(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
