package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ansimark/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logHooks reports render events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnThemeLoad(_ context.Context, name string, entries int, err error) {
	if err != nil {
		h.logger.Debug("theme load failed", "theme", name, "err", err)
		return
	}
	h.logger.Debug("theme loaded", "theme", name, "entries", entries)
}

func (h logHooks) OnRender(_ context.Context, bytes int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "err", err)
		return
	}
	h.logger.Debug("rendered", "bytes", bytes, "took", duration.Round(time.Microsecond))
}

func (h logHooks) OnSplit(_ context.Context, length, offset int) {
	h.logger.Debug("split", "length", length, "offset", offset)
}

var _ observability.RenderHooks = logHooks{}
