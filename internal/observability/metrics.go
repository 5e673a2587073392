package observability

import (
	"sync"
)

// Metrics provides basic in-memory counters for interaction outcomes.
type Metrics struct {
	mu           sync.Mutex
	interactions map[string]int64
	tickets      map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		interactions: make(map[string]int64),
		tickets:      make(map[string]int64),
	}
}

// RecordInteraction counts one handled interaction by kind and outcome.
func (m *Metrics) RecordInteraction(kind, outcome string) {
	if m == nil {
		return
	}
	key := kind + "|" + outcome
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interactions[key]++
}

// RecordTicket counts one ticket lifecycle transition (opened, closed, rejected).
func (m *Metrics) RecordTicket(transition string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets[transition]++
}

// Snapshot copies the current counters for the ops endpoint.
func (m *Metrics) Snapshot() (interactions, tickets map[string]int64) {
	interactions = make(map[string]int64)
	tickets = make(map[string]int64)
	if m == nil {
		return interactions, tickets
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range m.interactions {
		interactions[k] = v
	}
	for k, v := range m.tickets {
		tickets[k] = v
	}
	return interactions, tickets
}
