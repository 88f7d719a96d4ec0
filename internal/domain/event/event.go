package event

import "time"

type Type string

const (
	TypeLibraryChanged Type = "library_changed"
	TypeConfigUpdated  Type = "config_updated"
)

// Event carries identifiers only, not full state. Subscribers re-read the
// library or config through the normal read path.
type Event struct {
	Type      Type      `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

func New(t Type) Event {
	return Event{Type: t, Timestamp: time.Now().UTC()}
}
