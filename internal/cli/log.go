package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the stderr logger shared by every command. Timestamps
// use centisecond precision so layout and render steps can be told apart.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          appName,
		Level:           level,
	})
}

// stage times one user-visible step, such as converting a file, and logs it
// with its counts once it finishes.
type stage struct {
	logger *log.Logger
	name   string
	start  time.Time
}

func startStage(ctx context.Context, name string) *stage {
	return &stage{logger: loggerFromContext(ctx), name: name, start: time.Now()}
}

// done logs the stage at info level. keyvals are appended before the
// elapsed time, e.g. "converted graph.dot nodes=3 paths=2 elapsed=12ms".
func (s *stage) done(keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(s.start).Round(time.Millisecond))
	s.logger.Info(s.name, keyvals...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default when ctx carries no logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
