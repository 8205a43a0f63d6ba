package services

import (
	"log"
	"sync"
	"time"

	"oh-server/hours"
	"oh-server/models"
)

// Subscriber receives every result the poller publishes.
type Subscriber func(venueID string, result *models.StatusResult)

// StatusPoller re-evaluates one venue's opening hours on a fixed
// cadence and publishes each result to its single subscriber. It
// evaluates immediately on start, then once per interval. Stop cancels
// the timer deterministically; nothing is published after Stop returns.
type StatusPoller struct {
	venueID    string
	interval   time.Duration
	clock      hours.Clock
	subscriber Subscriber

	mu        sync.Mutex
	hoursText string
	stop      chan struct{} // nil when not running, closed on teardown
}

// NewStatusPoller constructs a poller bound to one venue and subscriber.
func NewStatusPoller(
	venueID string,
	hoursText string,
	interval time.Duration,
	clock hours.Clock,
	subscriber Subscriber,
) *StatusPoller {
	return &StatusPoller{
		venueID:    venueID,
		interval:   interval,
		clock:      clock,
		subscriber: subscriber,
		hoursText:  hoursText,
	}
}

// Start activates the poller: evaluate and publish now, then on every
// tick. The first publication happens before Start returns, so a
// subscriber that unsubscribes right away still sees exactly one
// result. Starting an already-running poller is a no-op.
func (p *StatusPoller) Start() {
	p.mu.Lock()
	if p.stop != nil {
		p.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	p.stop = stop
	hoursText := p.hoursText
	p.mu.Unlock()

	p.publish(hoursText, stop)

	go p.run(hoursText, stop)
}

// Stop deactivates the poller and releases its timer. The stop channel
// is closed exactly once even under rapid restart cycles.
func (p *StatusPoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop == nil {
		return
	}
	close(p.stop)
	p.stop = nil
}

// UpdateHours swaps the hours string and restarts the cadence from
// zero. The old timer never fires with the new string and vice versa.
func (p *StatusPoller) UpdateHours(hoursText string) {
	p.mu.Lock()
	p.hoursText = hoursText
	running := p.stop != nil
	if running {
		close(p.stop)
		p.stop = nil
	}
	p.mu.Unlock()

	if running {
		p.Start()
	}
}

// Hours returns the hours string the poller currently evaluates.
func (p *StatusPoller) Hours() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hoursText
}

func (p *StatusPoller) run(hoursText string, stop chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.publish(hoursText, stop)
		}
	}
}

// publish evaluates and delivers one result. A parse failure only
// skips this tick; the schedule keeps running. The stop check and the
// subscriber call share the mutex with Stop, so once Stop returns no
// further delivery can happen.
func (p *StatusPoller) publish(hoursText string, stop chan struct{}) {
	result, err := hours.Evaluate(hoursText, p.clock.Now())
	if err != nil {
		log.Printf("[StatusPoller] Evaluation failed for %s: %v", p.venueID, err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	select {
	case <-stop:
		return
	default:
	}
	p.subscriber(p.venueID, result)
}
