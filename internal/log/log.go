// Package log is twig's debug logger. Entries are written as single lines of
// "timestamp [LEVEL] [category] message key=value" to a file opened through
// tea.LogToFile, and mirrored onto a broker so a UI can tail them.
// Logging stays off unless Init is called (twig --debug or TWIG_DEBUG=1).
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/twig/internal/pubsub"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatGit     Category = "git"     // git process invocations
	CatWatcher Category = "watcher" // file watcher events
	CatUI      Category = "ui"      // component updates
	CatMode    Category = "mode"    // view controller events
	CatConfig  Category = "config"  // config loading and saving
	CatCache   Category = "cache"   // cache hits and flushes
	CatStore   Category = "store"   // repository registry
	CatTrace   Category = "trace"   // tracing setup
)

type logger struct {
	mu       sync.Mutex
	w        io.Writer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[string]
	now      func() time.Time

	recent []string
	head   int
}

// bufferSize is how many entries Recent can return.
const bufferSize = 500

var (
	stateMu sync.RWMutex
	current *logger
)

// Init starts logging to path. The returned func closes the file.
func Init(path string) (func(), error) {
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("opening debug log: %w", err)
	}
	install(newLogger(f))
	return func() {
		stateMu.Lock()
		current = nil
		stateMu.Unlock()
		_ = f.Close()
	}, nil
}

// InitWriter starts logging to w. Used by tests and by callers that own the
// destination themselves.
func InitWriter(w io.Writer) {
	install(newLogger(w))
}

func newLogger(w io.Writer) *logger {
	return &logger{
		w:        w,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](),
		now:      time.Now,
	}
}

func install(l *logger) {
	stateMu.Lock()
	defer stateMu.Unlock()
	if current != nil {
		current.broker.Close()
	}
	current = l
}

func active() *logger {
	stateMu.RLock()
	defer stateMu.RUnlock()
	return current
}

// SetEnabled toggles logging without closing the destination.
func SetEnabled(enabled bool) {
	if l := active(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel drops entries below level.
func SetMinLevel(level Level) {
	if l := active(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

func Debug(cat Category, msg string, fields ...any) { write(LevelDebug, cat, msg, fields...) }
func Info(cat Category, msg string, fields ...any)  { write(LevelInfo, cat, msg, fields...) }
func Warn(cat Category, msg string, fields ...any)  { write(LevelWarn, cat, msg, fields...) }
func Error(cat Category, msg string, fields ...any) { write(LevelError, cat, msg, fields...) }

// ErrorErr logs at error level with err appended as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	l := active()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.minLevel {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", l.now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	b.WriteByte('\n')

	entry := b.String()
	_, _ = io.WriteString(l.w, entry)
	l.remember(entry)
	l.broker.Publish(pubsub.CreatedEvent, entry)
}

// remember keeps entry in the ring buffer. Callers hold l.mu.
func (l *logger) remember(entry string) {
	if len(l.recent) < bufferSize {
		l.recent = append(l.recent, entry)
		return
	}
	l.recent[l.head] = entry
	l.head = (l.head + 1) % bufferSize
}

// Recent returns up to n of the latest entries, oldest first.
func Recent(n int) []string {
	l := active()
	if l == nil || n <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	ordered := make([]string, 0, len(l.recent))
	ordered = append(ordered, l.recent[l.head:]...)
	ordered = append(ordered, l.recent[:l.head]...)
	if len(ordered) > n {
		ordered = ordered[len(ordered)-n:]
	}
	return ordered
}

// ClearBuffer forgets the entries Recent would return.
func ClearBuffer() {
	if l := active(); l != nil {
		l.mu.Lock()
		l.recent = nil
		l.head = 0
		l.mu.Unlock()
	}
}

// Event is one published log line.
type Event = pubsub.Event[string]

// NewListener tails log lines for as long as ctx lives. It returns nil when
// logging was never initialised.
func NewListener(ctx context.Context) *pubsub.Listener[string] {
	l := active()
	if l == nil {
		return nil
	}
	return pubsub.NewListener(ctx, l.broker)
}
