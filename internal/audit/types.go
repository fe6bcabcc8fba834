package audit

import (
	"time"
)

// Action is the kind of mutation performed on a record.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// RecordKind identifies which collection a log entry refers to.
type RecordKind string

const (
	KindContact RecordKind = "contact"
	KindNote    RecordKind = "note"
)

// Entry is a single audit log line.
type Entry struct {
	ID        string                 `json:"id"`
	Kind      RecordKind             `json:"kind"`
	Key       string                 `json:"key"`
	Action    Action                 `json:"action"`
	Timestamp time.Time              `json:"timestamp"`
	Details   map[string]interface{} `json:"details,omitempty"`
}
