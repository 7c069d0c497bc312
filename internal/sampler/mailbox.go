package sampler

import (
	"errors"
	"sync"
)

// ErrMailboxClosed is returned by Send once the consumer has gone away.
var ErrMailboxClosed = errors.New("mailbox closed")

// Mailbox is an unbounded FIFO between the poller and the UI. Send never
// blocks and TryRecv never waits, so neither side can stall the other.
type Mailbox struct {
	mu     sync.Mutex
	queue  []Update
	closed bool
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Send appends u, or fails with ErrMailboxClosed.
func (m *Mailbox) Send(u Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrMailboxClosed
	}
	m.queue = append(m.queue, u)
	return nil
}

// TryRecv pops the oldest update if there is one.
func (m *Mailbox) TryRecv() (Update, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return Update{}, false
	}
	u := m.queue[0]
	m.queue[0] = Update{}
	m.queue = m.queue[1:]
	return u, true
}

// Close is called by the consumer. Pending updates are discarded.
func (m *Mailbox) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.queue = nil
}

// Len reports the number of pending updates.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}
