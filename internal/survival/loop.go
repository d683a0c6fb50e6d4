package survival

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/currentlycrafting/survival/internal/core"
)

// Loop drives a session in real time from a ticker. Each wake-up reads the
// input flags, runs the due steps and then calls the render hook, so
// rendering never overlaps an update.
type Loop struct {
	session *Session
	input   *core.IntentFlags
	clock   *Clock
	render  func(View)
	logger  *log.Logger
}

// NewLoop creates a loop for s reading directions from input. render may be nil.
func NewLoop(s *Session, input *core.IntentFlags, render func(View), logger *log.Logger) *Loop {
	if logger == nil {
		logger = s.logger
	}
	return &Loop{
		session: s,
		input:   input,
		clock:   s.NewClock(),
		render:  render,
		logger:  logger,
	}
}

// Clock exposes the loop's clock for diagnostics.
func (l *Loop) Clock() *Clock {
	return l.clock
}

// Run blocks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.clock.Step())
	defer ticker.Stop()

	l.clock.Observe(time.Now())
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			l.tick(now)
		}
	}
}

func (l *Loop) tick(now time.Time) {
	if l.clock.Observe(now) {
		l.logger.Debug("clock", "fps", l.clock.FPS(), "ticks", l.clock.Ticks())
	}
	in := l.input.Snapshot()
	for l.clock.ShouldUpdate() {
		l.session.Step(in)
	}
	if l.render != nil {
		l.render(l.session.View())
	}
}
