package check

import "time"

type quietState int

const (
	busy quietState = iota
	waitingForQuiet
	settled
)

func (s quietState) String() string {
	switch s {
	case busy:
		return "busy"
	case waitingForQuiet:
		return "waiting"
	case settled:
		return "settled"
	}
	return "unknown"
}

// quiescence debounces request completions: it settles only when its
// timer fires and nothing is in flight.
type quiescence struct {
	delay time.Duration
	state quietState
	timer *time.Timer
}

func newQuiescence(delay time.Duration) *quiescence {
	return &quiescence{delay: delay}
}

// arm cancels any pending evaluation and schedules a new one.
func (q *quiescence) arm() {
	if q.state == settled {
		return
	}
	q.stop()
	q.timer = time.NewTimer(q.delay)
	q.state = waitingForQuiet
}

// markBusy records a new request; the pending evaluation stays scheduled.
func (q *quiescence) markBusy() {
	if q.state != settled {
		q.state = busy
	}
}

// C is nil until the first arm, and after settling.
func (q *quiescence) C() <-chan time.Time {
	if q.timer == nil {
		return nil
	}
	return q.timer.C
}

// fire evaluates the timer expiry and reports whether the page settled.
func (q *quiescence) fire(inFlight int) bool {
	if q.state == settled {
		return true
	}
	q.timer = nil
	if inFlight > 0 {
		q.state = busy
		q.arm()
		return false
	}
	q.state = settled
	return true
}

func (q *quiescence) stop() {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}
