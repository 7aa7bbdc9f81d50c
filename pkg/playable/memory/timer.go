package memory

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// timerAction is something the session does on its own after a delay
type timerAction int

const (
	timerActionTick timerAction = iota
	timerActionHide
)

func (t timerAction) String() string {
	switch t {
	case timerActionTick:
		return "tick"
	case timerActionHide:
		return "hide"
	default:
		return "unknown"
	}
}

// NOTE: must be called with the lock held
func (s *Session) delay(action timerAction) time.Duration {
	if action == timerActionHide {
		return s.options.RevealDelay
	}

	return s.options.TickInterval
}

// schedule replaces any pending timer for the action
// The callback carries the generation it was scheduled in, so a deal that happens
// before it fires leaves it with nothing to do.
// NOTE: must be called with the lock held
func (s *Session) schedule(action timerAction, generation uint64) {
	s.cancel(action)
	s.timers[action] = s.options.Clock.AfterFunc(s.delay(action), func() {
		s.fire(action, generation)
	})
}

// NOTE: must be called with the lock held
func (s *Session) cancel(action timerAction) {
	if timer, ok := s.timers[action]; ok {
		timer.Stop()
		delete(s.timers, action)
	}
}

// NOTE: must be called with the lock held
func (s *Session) cancelAll() {
	for action := range s.timers {
		s.cancel(action)
	}
}

func (s *Session) fire(action timerAction, generation uint64) {
	s.lock.Lock()
	if s.closed || generation != s.state.generation {
		s.lock.Unlock()
		s.logger.WithFields(logrus.Fields{
			"action":     action.String(),
			"generation": generation,
		}).Debug("discarding stale timer")
		return
	}

	delete(s.timers, action)

	prev := s.state
	switch action {
	case timerActionTick:
		s.state = Tick(s.state)
		if s.state.elapsed != prev.elapsed {
			s.schedule(timerActionTick, generation)
		}
	case timerActionHide:
		s.state = Hide(s.state)
	default:
		panic(fmt.Sprintf("unknown timer action: %d", action))
	}

	changed := s.state.elapsed != prev.elapsed || s.state.Phase() != prev.Phase()
	s.lock.Unlock()

	if changed {
		s.notify()
	}
}
