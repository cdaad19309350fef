// Package partylog defines the structured logger used by the presents
// simulation and its command.
package partylog

// PlainLogger is the subset of *slog.Logger the simulation needs.
type PlainLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Logger is a PlainLogger that can carry attributes and a component name.
type Logger interface {
	PlainLogger
	With(args ...any) Logger
	WithComponent(component string) Logger
}

var _ Logger = (*wrappedLogger)(nil)

type wrappedLogger struct {
	plain PlainLogger
	attrs []any
}

// WrapPlainLogger turns any PlainLogger, such as *slog.Logger, into a Logger.
func WrapPlainLogger(plain PlainLogger) Logger {
	return &wrappedLogger{plain: plain}
}

func (wl *wrappedLogger) Debug(msg string, args ...any) {
	wl.plain.Debug(msg, wl.args(args)...)
}

func (wl *wrappedLogger) Info(msg string, args ...any) {
	wl.plain.Info(msg, wl.args(args)...)
}

func (wl *wrappedLogger) Warn(msg string, args ...any) {
	wl.plain.Warn(msg, wl.args(args)...)
}

func (wl *wrappedLogger) Error(msg string, args ...any) {
	wl.plain.Error(msg, wl.args(args)...)
}

func (wl *wrappedLogger) With(args ...any) Logger {
	attrs := make([]any, 0, len(wl.attrs)+len(args))
	attrs = append(attrs, wl.attrs...)
	attrs = append(attrs, args...)
	return &wrappedLogger{plain: wl.plain, attrs: attrs}
}

func (wl *wrappedLogger) WithComponent(component string) Logger {
	return wl.With("component", component)
}

func (wl *wrappedLogger) args(args []any) []any {
	if len(wl.attrs) == 0 {
		return args
	}
	all := make([]any, 0, len(wl.attrs)+len(args))
	all = append(all, wl.attrs...)
	return append(all, args...)
}
