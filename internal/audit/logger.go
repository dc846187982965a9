package audit

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const separator = "--------------------------------------------------"

// Logger appends completed interpretation cycles to a plain-text audit file,
// one timestamped User/AdminX pair per turn. Write failures are logged and
// swallowed; the audit trail must never block a reply to the user.
type Logger struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func New(path string) *Logger {
	return &Logger{path: path, now: time.Now}
}

func (l *Logger) Record(message, response string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := l.now().Format("2006-01-02 15:04:05")

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] User: %s\n", timestamp, message)
	fmt.Fprintf(&b, "[%s] AdminX: %s\n", timestamp, response)
	b.WriteString(separator + "\n")

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Logger.Warn().Err(err).Str("path", l.path).Msg("failed to open audit log")
		return
	}
	defer f.Close()

	if _, err := f.WriteString(b.String()); err != nil {
		log.Logger.Warn().Err(err).Str("path", l.path).Msg("failed to write audit log")
	}
}
