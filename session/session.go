// Package session runs a game. It is the single loop that feeds ticks and
// player input into the simulation and tells observers about every change.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/battlesnakeio/snake/input"
	"github.com/battlesnakeio/snake/rules"
	log "github.com/sirupsen/logrus"
)

// DefaultTickInterval is how often the snake advances.
const DefaultTickInterval = 200 * time.Millisecond

const eventBuffer = 16

// Session serialises ticks and actions for one Simulation.
type Session struct {
	Sim          *rules.Simulation
	TickInterval time.Duration

	events chan input.Action

	subsMu  sync.Mutex
	subs    map[int]func(rules.GameState)
	nextSub int
}

// New returns a session for sim. A zero interval means DefaultTickInterval.
func New(sim *rules.Simulation, interval time.Duration) *Session {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Session{
		Sim:          sim,
		TickInterval: interval,
		events:       make(chan input.Action, eventBuffer),
		subs:         map[int]func(rules.GameState){},
	}
}

// Snapshot returns the current state of the simulation.
func (s *Session) Snapshot() rules.GameState {
	return s.Sim.Snapshot()
}

// Send queues an action for the loop. Actions are dropped when the queue is
// full, which only happens when the loop is not running.
func (s *Session) Send(a input.Action) bool {
	if a == input.None {
		return false
	}
	select {
	case s.events <- a:
		return true
	default:
		log.WithField("action", a.String()).Warn("input queue full, dropping action")
		return false
	}
}

// Subscribe registers fn to receive a snapshot after every change. fn is
// called from the loop goroutine and must not block. The returned func
// removes the subscription.
func (s *Session) Subscribe(fn func(rules.GameState)) func() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Session) publish() {
	st := s.Sim.Snapshot()

	s.subsMu.Lock()
	fns := make([]func(rules.GameState), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

// Run drives the simulation until ctx is done or a Quit action arrives. It
// returns ctx.Err() on cancellation and nil on Quit.
func (s *Session) Run(ctx context.Context) error {
	var (
		ticker *time.Ticker
		tick   <-chan time.Time
	)
	// The ticker only exists while the round is running.
	syncTicker := func() {
		running := s.Sim.Status() == rules.StatusRunning
		switch {
		case running && ticker == nil:
			ticker = time.NewTicker(s.TickInterval)
			tick = ticker.C
		case !running && ticker != nil:
			ticker.Stop()
			ticker, tick = nil, nil
		}
	}
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	s.publish()
	syncTicker()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
			outcome := s.Sim.Tick(ctx)
			observeOutcome(outcome, s.Sim.Snapshot())
			if outcome != rules.OutcomeNone {
				s.publish()
			}
		case a := <-s.events:
			if a == input.Quit {
				log.Info("quit requested")
				return nil
			}
			if s.apply(ctx, a) {
				s.publish()
			}
		}
		syncTicker()
	}
}

// apply hands a to the simulation and reports whether the state changed.
func (s *Session) apply(ctx context.Context, a input.Action) bool {
	return input.Dispatch(ctx, s.Sim, a)
}
