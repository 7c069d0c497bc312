package sampler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Dicklesworthstone/sysdash/internal/logger"
)

// Refresher produces the snapshot for a polling context. *Source is the
// production implementation.
type Refresher interface {
	Snapshot(c PollingContext) any
}

// Poller samples the Refresher on a fixed cadence and publishes the results
// to a Mailbox. The refresher and the current context share one lock, taken
// both by the poller goroutine and by the UI when it switches tabs.
type Poller struct {
	mu      sync.Mutex
	source  Refresher
	context PollingContext
	seq     uint64

	out      *Mailbox
	interval time.Duration
	log      logger.Logger
}

func NewPoller(source Refresher, out *Mailbox, interval time.Duration, log logger.Logger) *Poller {
	if log == nil {
		log = logger.Noop()
	}
	return &Poller{
		source:   source,
		context:  ContextOverview,
		out:      out,
		interval: interval,
		log:      log,
	}
}

// SetContext changes what the next ticks sample.
func (p *Poller) SetContext(c PollingContext) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.context != c {
		p.log.Debug("context %s -> %s", p.context, c)
	}
	p.context = c
}

// Context returns the current polling context.
func (p *Poller) Context() PollingContext {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.context
}

// RefreshNow samples c synchronously without publishing. The UI uses it to
// fill a panel the moment it is mounted.
func (p *Poller) RefreshNow(c PollingContext) (Update, error) {
	return p.produce(c, false)
}

// Run publishes one update per interval until ctx is cancelled or the
// mailbox is closed.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return
		}
		if !p.tick() {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// tick samples the current context and publishes it. It returns false when
// the consumer is gone.
func (p *Poller) tick() bool {
	u, err := p.produce(0, true)
	if err != nil {
		p.log.Error("skipping sample: %v", err)
		return true
	}
	if err := p.out.Send(u); err != nil {
		p.log.Debug("stopping: %v", err)
		return false
	}
	if n := p.out.Len(); n > 1 {
		p.log.Debug("%d updates waiting for the UI", n)
	}
	return true
}

func (p *Poller) produce(c PollingContext, current bool) (Update, error) {
	c, snap, seq, err := p.snapshot(c, current)
	if err != nil {
		return Update{}, err
	}
	return NewUpdate(c, seq, snap)
}

// snapshot holds the lock for the refresh call only. A panicking refresh is
// recovered so one bad platform read cannot take down the dashboard.
func (p *Poller) snapshot(c PollingContext, current bool) (ctx PollingContext, snap any, seq uint64, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if current {
		c = p.context
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("refresh %s panicked: %v", c, r)
		}
	}()

	snap = p.source.Snapshot(c)
	p.seq++
	return c, snap, p.seq, nil
}
