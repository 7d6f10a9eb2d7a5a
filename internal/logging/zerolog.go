package logging

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger on top of zerolog with a human-readable
// console writer. Used when the server runs with LogFormat "console".
type ZerologLogger struct {
	l zerolog.Logger
}

func NewZerologLogger(out io.Writer) *ZerologLogger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	return &ZerologLogger{l: zl}
}

func withFields(e *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, args[i+1])
	}
	return e
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	withFields(z.l.Info(), args).Msg(msg)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	withFields(z.l.Warn(), args).Msg(msg)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	withFields(z.l.Error(), args).Msg(msg)
}

func (z *ZerologLogger) With(args ...any) Logger {
	c := z.l.With()
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		c = c.Interface(key, args[i+1])
	}
	return &ZerologLogger{l: c.Logger()}
}
