// Package state provides thread-safe state management for the application:
// the observer, the viewing direction and the current sky snapshot.
package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/litescript/ls-planisphere/internal/almanac"
	"github.com/litescript/ls-planisphere/internal/astro"
	"github.com/litescript/ls-planisphere/internal/body"
	"github.com/litescript/ls-planisphere/internal/logging"
	"github.com/litescript/ls-planisphere/internal/projection"
	"github.com/litescript/ls-planisphere/internal/sky"
)

// EventType represents the type of sky event.
type EventType string

const (
	EventRise EventType = "RISE"
	EventSet  EventType = "SET"
)

// Event records a solar-system body crossing the horizon between two
// consecutive snapshots.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Body      string    `json:"body"`
	Azimuth   float64   `json:"azimuth_deg"`
}

// AltitudeHistory tracks the altitude of one body across snapshots.
type AltitudeHistory struct {
	Body    string
	Samples []TimeSeries
}

// TimeSeries is a single data point with timestamp.
type TimeSeries struct {
	Timestamp time.Time
	Value     float64
}

// Config holds configuration for the state manager.
type Config struct {
	MaxHistoryLen   int
	MaxEvents       int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxHistoryLen:   120, // 2 hours at 1 rebuild/min
		MaxEvents:       50,  // Last 50 events
		RefreshInterval: 30 * time.Second,
	}
}

// ErrNoObserver is returned by Rebuild before an observer is set.
var ErrNoObserver = errors.New("observer position not set")

// Manager handles all shared application state with thread-safe access.
// Snapshots are rebuilt, never modified, so readers may keep one as long as
// they like.
type Manager struct {
	mu  sync.RWMutex
	log *logging.Logger

	catalogue *body.Catalogue

	// Inputs
	where  astro.Geographic
	center astro.Horizontal

	// Current state
	current       *sky.ObservedSky
	currentSeq    uint64
	nextSeq       uint64
	lastBuild     time.Time
	lastError     error
	buildDuration time.Duration

	// Bodies above the horizon in the current snapshot, for event detection
	prevUp map[string]bool

	history       map[string]*AltitudeHistory
	maxHistoryLen int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	refreshInterval time.Duration
}

// NewManager creates a new state manager for the given catalogue.
func NewManager(cfg Config, cat *body.Catalogue, log *logging.Logger) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	if log == nil {
		log = logging.Discard()
	}
	center, _ := astro.NewHorizontalDeg(180, 45)
	return &Manager{
		log:             log,
		catalogue:       cat,
		center:          center,
		maxHistoryLen:   cfg.MaxHistoryLen,
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
		history:         make(map[string]*AltitudeHistory),
		prevUp:          make(map[string]bool),
	}
}

// SetObserver changes the observer's position. It takes effect on the next
// rebuild.
func (m *Manager) SetObserver(where astro.Geographic) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if where != m.where {
		// Rise/set transitions are meaningless across a change of place.
		m.prevUp = make(map[string]bool)
		m.history = make(map[string]*AltitudeHistory)
	}
	m.where = where
}

// Observer returns the observer's position.
func (m *Manager) Observer() astro.Geographic {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.where
}

// SetCenter changes the projection centre. It takes effect on the next
// rebuild.
func (m *Manager) SetCenter(center astro.Horizontal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.center = center
}

// Center returns the projection centre.
func (m *Manager) Center() astro.Horizontal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.center
}

// Rebuild computes a new snapshot for instant t with the current inputs and
// makes it current. When rebuilds overlap, the one started last wins.
func (m *Manager) Rebuild(t time.Time) (*sky.ObservedSky, error) {
	m.mu.Lock()
	m.nextSeq++
	seq := m.nextSeq
	where, center, cat := m.where, m.center, m.catalogue
	m.mu.Unlock()

	if !where.Valid() {
		m.recordError(ErrNoObserver)
		return nil, ErrNoObserver
	}

	start := time.Now()
	s, err := sky.Build(t, where, projection.NewStereographic(center), cat)
	elapsed := time.Since(start)
	if err != nil {
		err = fmt.Errorf("rebuild at %s: %w", t.Format(time.RFC3339), err)
		m.recordError(err)
		m.log.Error("%v", err)
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastBuild = time.Now()
	m.lastError = nil
	m.buildDuration = elapsed
	if seq < m.currentSeq {
		m.log.Debug("discarding stale snapshot %d (current %d)", seq, m.currentSeq)
		return s, nil
	}
	m.current, m.currentSeq = s, seq

	m.detectEvents(s)
	m.updateHistory(s)
	m.log.Debug("snapshot %d for %s built in %s (%d objects)",
		seq, t.UTC().Format(time.RFC3339), elapsed, len(s.Objects()))
	return s, nil
}

func (m *Manager) recordError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastError = err
}

// solarSystem returns the Sun, Moon and planets of s.
func solarSystem(s *sky.ObservedSky) []body.Object {
	objs := []body.Object{s.Sun(), s.Moon()}
	for _, p := range s.Planets() {
		objs = append(objs, p)
	}
	return objs
}

// detectEvents compares the new snapshot with the previous one and records
// rises and sets.
func (m *Manager) detectEvents(s *sky.ObservedSky) {
	up := make(map[string]bool)
	first := len(m.prevUp) == 0

	for _, o := range solarSystem(s) {
		h, _ := s.Horizontal(o)
		isUp := h.AltDeg() > almanac.MinAltitude
		up[o.Name()] = isUp
		if first {
			continue
		}

		wasUp := m.prevUp[o.Name()]
		switch {
		case isUp && !wasUp:
			m.addEvent(Event{Type: EventRise, Timestamp: s.Instant(), Body: o.Name(), Azimuth: h.AzDeg()})
		case !isUp && wasUp:
			m.addEvent(Event{Type: EventSet, Timestamp: s.Instant(), Body: o.Name(), Azimuth: h.AzDeg()})
		}
	}
	m.prevUp = up
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	m.log.Info("%s %s at azimuth %.0f°", e.Body, e.Type, e.Azimuth)
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

func (m *Manager) updateHistory(s *sky.ObservedSky) {
	if m.maxHistoryLen <= 0 {
		return
	}
	for _, o := range solarSystem(s) {
		hist, ok := m.history[o.Name()]
		if !ok {
			hist = &AltitudeHistory{Body: o.Name(), Samples: make([]TimeSeries, 0, m.maxHistoryLen)}
			m.history[o.Name()] = hist
		}
		h, _ := s.Horizontal(o)
		hist.Samples = append(hist.Samples, TimeSeries{Timestamp: s.Instant(), Value: h.AltDeg()})
		if len(hist.Samples) > m.maxHistoryLen {
			hist.Samples = hist.Samples[1:]
		}
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Sky           *sky.ObservedSky
	Observer      astro.Geographic
	Center        astro.Horizontal
	LastBuild     time.Time
	LastError     error
	BuildDuration time.Duration
	Events        []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Sky:           m.current,
		Observer:      m.where,
		Center:        m.center,
		LastBuild:     m.lastBuild,
		LastError:     m.lastError,
		BuildDuration: m.buildDuration,
		Events:        m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		result[i] = m.events[(m.eventWriteAt+i)%m.maxEvents]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// History returns a copy of the altitude history of the named body, or nil.
func (m *Manager) History(name string) *AltitudeHistory {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hist, ok := m.history[name]
	if !ok {
		return nil
	}
	out := &AltitudeHistory{Body: hist.Body, Samples: make([]TimeSeries, len(hist.Samples))}
	copy(out.Samples, hist.Samples)
	return out
}

// AltitudeRate estimates how fast the named body's altitude changes, in
// degrees per hour, from its last two samples.
func (m *Manager) AltitudeRate(name string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hist, ok := m.history[name]
	if !ok || len(hist.Samples) < 2 {
		return 0
	}
	n := len(hist.Samples)
	p1, p2 := hist.Samples[n-2], hist.Samples[n-1]

	hours := p2.Timestamp.Sub(p1.Timestamp).Hours()
	if hours == 0 {
		return 0
	}
	return (p2.Value - p1.Value) / hours
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData returns true once a snapshot has been built.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
