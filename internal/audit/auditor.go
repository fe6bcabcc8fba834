package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Auditor appends record mutations to a dated JSON-lines file. Entries
// are batched and flushed when the batch fills or on explicit Flush.
// A nil *Auditor is a no-op so callers never have to guard.
type Auditor struct {
	logFile   string
	batchSize int
	mu        sync.Mutex
	pending   []Entry
}

func NewAuditor(logDir string) (*Auditor, error) {
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create audit log directory: %w", err)
	}

	logFile := filepath.Join(logDir, fmt.Sprintf("audit_%s.log", time.Now().Format("2006-01-02")))

	return &Auditor{
		logFile:   logFile,
		batchSize: 10,
	}, nil
}

// Log records a mutation. The write is buffered; errors surface on
// flush.
func (a *Auditor) Log(kind RecordKind, action Action, key string, details map[string]interface{}) error {
	if a == nil {
		return nil
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Key:       key,
		Action:    action,
		Timestamp: time.Now(),
		Details:   details,
	}

	a.mu.Lock()
	a.pending = append(a.pending, entry)
	full := len(a.pending) >= a.batchSize
	a.mu.Unlock()

	if full {
		return a.Flush()
	}
	return nil
}

// Flush writes all pending entries to the log file.
func (a *Auditor) Flush() error {
	if a == nil {
		return nil
	}

	a.mu.Lock()
	pending := a.pending
	a.pending = nil
	a.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	f, err := os.OpenFile(a.logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, entry := range pending {
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("failed to write audit entry: %w", err)
		}
	}
	return nil
}
