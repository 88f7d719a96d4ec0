package testutil

import "sync"

// CaptureNotifier is a test-double for the websocket hub. It records every
// broadcast with a mutex so it is safe for concurrent use.
type CaptureNotifier struct {
	mu     sync.Mutex
	Events []any
}

func (c *CaptureNotifier) Broadcast(event any) {
	c.mu.Lock()
	c.Events = append(c.Events, event)
	c.mu.Unlock()
}

// Count returns the number of broadcasts recorded so far.
func (c *CaptureNotifier) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Events)
}

// Reset clears all recorded events.
func (c *CaptureNotifier) Reset() {
	c.mu.Lock()
	c.Events = nil
	c.mu.Unlock()
}
