package ports

// LogLevel is the minimum severity a Logger prints.
type LogLevel int

const (
	// LevelDebug adds per-stage detail: frame counts, sizes, skipped
	// captions.
	LevelDebug LogLevel = iota
	// LevelInfo prints one line per request and server lifecycle events.
	LevelInfo
	// LevelWarn prints problems that did not fail the request, such as a
	// debug frame that could not be saved.
	LevelWarn
	// LevelError prints failed requests only.
	LevelError
	// LevelQuiet prints nothing.
	LevelQuiet
)

var levelNames = [...]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelQuiet: "quiet",
}

// String returns the name used for the level in config files and flags.
func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLogLevel maps a level name back to its LogLevel. Unknown names give
// LevelInfo; config.Validate rejects them before they get here.
func ParseLogLevel(s string) LogLevel {
	for l, name := range levelNames {
		if name == s {
			return LogLevel(l)
		}
	}
	return LevelInfo
}

// Logger prints progress of caption requests. msg is a go-l10n key
// formatted with args, so the same call prints English or Japanese.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// WithComponent returns a Logger whose lines are prefixed with
	// component, e.g. "[decode]". Stages log through one of these.
	WithComponent(component string) Logger
}
