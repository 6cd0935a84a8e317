// Package events records kpart operations in a JSONL audit log.
//
// Each line is one Event. Appends are serialized within the process by a
// mutex and across processes by an advisory lock file next to the log.
package events

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// Event is one recorded operation.
type Event struct {
	ID        string                 `json:"id"`
	Timestamp time.Time              `json:"ts"`
	Source    string                 `json:"source"`
	Type      string                 `json:"type"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
}

// Event types written by the CLI.
const (
	TypeCheck    = "check"
	TypeInfo     = "info"
	TypeRewrite  = "rewrite"
	TypeWildcard = "wildcard"
	TypeInsert   = "insert"
	TypeExpand   = "expand"
	TypeScan     = "scan"
)

const (
	source      = "kpart"
	lockSuffix  = ".lock"
	lockTimeout = 2 * time.Second
	lockRetry   = 50 * time.Millisecond
)

// mutex protects concurrent writes from this process.
var mutex sync.Mutex

// Logger appends events to one log file.
type Logger struct {
	path string
}

// NewLogger returns a logger writing to path. The file and its directory
// are created on first write.
func NewLogger(path string) *Logger {
	return &Logger{path: path}
}

// Path returns the log file path.
func (l *Logger) Path() string {
	return l.path
}

// Log appends an event of the given type.
func (l *Logger) Log(eventType string, payload map[string]interface{}) error {
	event := Event{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Source:    source,
		Type:      eventType,
		Payload:   payload,
	}
	return l.write(event)
}

func (l *Logger) write(event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	mutex.Lock()
	defer mutex.Unlock()

	lock := flock.New(l.path + lockSuffix)
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return fmt.Errorf("lock acquisition failed: %w", err)
	}
	if !locked {
		return fmt.Errorf("event log is locked by another process: %s", l.path)
	}
	defer func() { _ = lock.Unlock() }()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: event log is non-sensitive operational data
	if err != nil {
		return fmt.Errorf("opening events file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing event: %w", err)
	}
	return nil
}

// Read returns every event in the log at path, oldest first. A missing file
// yields no events. Lines that do not parse are skipped.
func Read(path string) ([]Event, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening events file: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var e Event
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			continue
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	return events, nil
}

// Filter selects events.
type Filter struct {
	Type  string
	Since time.Time
}

// FilterEvents returns the events matching f, preserving order.
func FilterEvents(events []Event, f Filter) []Event {
	var out []Event
	for _, e := range events {
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if !f.Since.IsZero() && e.Timestamp.Before(f.Since) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Payload helpers for the CLI's event types.

// NamePayload describes an operation on a single filename.
func NamePayload(name, result string) map[string]interface{} {
	p := map[string]interface{}{
		"name": name,
	}
	if result != "" {
		p["result"] = result
	}
	return p
}

// ScanPayload describes a discovery run.
func ScanPayload(template string, total, present, missing, stray int) map[string]interface{} {
	return map[string]interface{}{
		"template": template,
		"total":    total,
		"present":  present,
		"missing":  missing,
		"stray":    stray,
	}
}
