package core

import "sync"

// Intent is the movement input sampled once per tick.
// All three flags are independent; the simulation decides priority.
type Intent struct {
	Left  bool
	Right bool
	Jump  bool
}

// IntentCell holds the live intent written by input callbacks.
// Writers may run on any goroutine; the tick reads a whole-record copy
// with Snapshot so a tick never observes a half-updated intent.
type IntentCell struct {
	mu     sync.Mutex
	intent Intent
}

// Store replaces the whole record.
func (c *IntentCell) Store(in Intent) {
	c.mu.Lock()
	c.intent = in
	c.mu.Unlock()
}

// Snapshot returns a copy of the current intent.
func (c *IntentCell) Snapshot() Intent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.intent
}

// Reset clears all flags.
func (c *IntentCell) Reset() {
	c.Store(Intent{})
}
