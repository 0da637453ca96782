// Package checkout implements the quick-check undo stack used in
// supermarket mode: a bounded ring buffer of recent check toggles that lets
// a shopper reverse an accidental tap without a confirmation dialog.
//
// Stacks are deliberately local to one (list, user) session on one server
// instance. They are not synchronized across devices — undo is accidental-tap
// recovery, not conflict resolution.
package checkout

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Capacity is the maximum number of undoable check operations per session.
// Pushing beyond it evicts the oldest entry.
const Capacity = 5

// Entry records the state of an item BEFORE a quick-check toggled it, so
// undo can restore the exact prior checked state and audit fields.
type Entry struct {
	ItemID    uuid.UUID
	Checked   bool
	CheckedAt *time.Time
	CheckedBy *uuid.UUID
}

// Stack is a bounded LIFO of undo entries with FIFO eviction on overflow.
// Not safe for concurrent use — Manager serializes access.
type Stack struct {
	entries []Entry
}

// Push appends an entry, evicting the oldest when the stack is full.
func (s *Stack) Push(e Entry) {
	if len(s.entries) == Capacity {
		s.entries = append(s.entries[:0], s.entries[1:]...)
		s.entries = s.entries[:Capacity-1]
	}
	s.entries = append(s.entries, e)
}

// Pop removes and returns the most recently pushed entry.
func (s *Stack) Pop() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	e := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return e, true
}

// Len returns the number of undoable entries.
func (s *Stack) Len() int { return len(s.entries) }

type sessionKey struct {
	listID uuid.UUID
	userID uuid.UUID
}

// Manager owns one undo stack per (list, user) session.
type Manager struct {
	mu     sync.Mutex
	stacks map[sessionKey]*Stack
}

func NewManager() *Manager {
	return &Manager{stacks: make(map[sessionKey]*Stack)}
}

// Push records a pre-toggle state on the session's stack.
func (m *Manager) Push(listID, userID uuid.UUID, e Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := sessionKey{listID, userID}
	s, ok := m.stacks[key]
	if !ok {
		s = &Stack{}
		m.stacks[key] = s
	}
	s.Push(e)
}

// Pop returns the most recent undo entry for the session, if any.
func (m *Manager) Pop(listID, userID uuid.UUID) (Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stacks[sessionKey{listID, userID}]
	if !ok {
		return Entry{}, false
	}
	return s.Pop()
}

// CanUndo reports whether the session has at least one undoable entry.
func (m *Manager) CanUndo(listID, userID uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stacks[sessionKey{listID, userID}]
	return ok && s.Len() > 0
}

// DropList discards every stack attached to a list. Called when the list is
// completed — stale entries must not resurrect state on the next list.
func (m *Manager) DropList(listID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.stacks {
		if key.listID == listID {
			delete(m.stacks, key)
		}
	}
}
