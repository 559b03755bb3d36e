// Package marquee rotates the showcase city shown alongside the report.
package marquee

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultInitial is shown before the first tick
const DefaultInitial = "Paris"

// DefaultInterval between rotations
const DefaultInterval = time.Second

// DefaultCities is the rotation order
var DefaultCities = []string{
	"New York",
	"Hyderabad",
	"London",
	"Sydney",
	"Pennsylvania",
	"Tokyo",
	"Bengaluru",
}

// Marquee cycles through a fixed list of cities on a ticker and fans each
// change out to its subscribers
type Marquee struct {
	cities   []string
	interval time.Duration
	logger   *slog.Logger

	mutex       sync.RWMutex
	current     string
	index       int
	subscribers map[int]chan string
	nextID      int
}

// New creates a marquee that shows initial and then rotates through cities.
// Empty arguments fall back to the defaults.
func New(cities []string, initial string, interval time.Duration, logger *slog.Logger) *Marquee {
	if len(cities) == 0 {
		cities = DefaultCities
	}
	if initial == "" {
		initial = DefaultInitial
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	list := make([]string, len(cities))
	copy(list, cities)

	return &Marquee{
		cities:      list,
		interval:    interval,
		logger:      logger.With("component", "marquee"),
		current:     initial,
		subscribers: make(map[int]chan string),
	}
}

// Current returns the city being shown
func (m *Marquee) Current() string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.current
}

// Interval returns the rotation interval
func (m *Marquee) Interval() time.Duration {
	return m.interval
}

// Advance moves to the next city, wrapping at the end of the list
func (m *Marquee) Advance() string {
	m.mutex.Lock()
	m.current = m.cities[m.index]
	m.index = (m.index + 1) % len(m.cities)
	city := m.current

	for _, ch := range m.subscribers {
		// Slow subscribers miss intermediate cities
		select {
		case ch <- city:
		default:
		}
	}
	m.mutex.Unlock()

	return city
}

// Subscribe returns a channel receiving every new city, and a function that
// closes it
func (m *Marquee) Subscribe() (<-chan string, func()) {
	ch := make(chan string, 1)

	m.mutex.Lock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = ch
	m.mutex.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mutex.Lock()
			delete(m.subscribers, id)
			m.mutex.Unlock()
			close(ch)
		})
	}
}

// Start begins rotating until ctx is done.
// The returned function can be called to stop rotation
func (m *Marquee) Start(ctx context.Context) func() {
	rotationCtx, cancelRotation := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go m.run(rotationCtx, &wg)

	m.logger.Info("marquee started", "initial", m.Current(), "interval", m.interval)

	return func() {
		cancelRotation()
		wg.Wait()
	}
}

func (m *Marquee) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			city := m.Advance()
			m.logger.Debug("marquee advanced", "city", city)
		case <-ctx.Done():
			return
		}
	}
}
