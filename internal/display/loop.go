// Package display implements the live table of codes, redrawn in place once
// per second.
package display

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// DefaultInterval is the time between two frames.
const DefaultInterval = time.Second

// ErrNothingToShow is returned by Run if there are no secrets.
var ErrNothingToShow = errors.New("no secrets found")

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Loop draws the table of codes of Secrets on Renderer every Interval.
type Loop struct {
	Secrets  []string
	Renderer Renderer
	Clock    Clock
	Interval time.Duration
	// Wait blocks for the given duration or until the context is done. It
	// defaults to a timer.
	Wait func(ctx context.Context, d time.Duration) error
}

// New returns a Loop for the given secrets with the system clock and the
// default interval.
func New(secrets []string, r Renderer) *Loop {
	return &Loop{
		Secrets:  secrets,
		Renderer: r,
		Clock:    SystemClock{},
		Interval: DefaultInterval,
		Wait:     wait,
	}
}

// Run draws the first frame and then redraws it in place every interval. It
// only returns if there is nothing to show, on a rendering or clock error, or
// when the context is done.
func (l *Loop) Run(ctx context.Context) error {
	if len(l.Secrets) == 0 {
		return ErrNothingToShow
	}

	clock, waitFn := l.Clock, l.Wait
	if clock == nil {
		clock = SystemClock{}
	}
	if waitFn == nil {
		waitFn = wait
	}

	var height int
	for {
		now := clock.Now()
		if now.Unix() < 0 {
			return errors.Errorf("system clock is set before the unix epoch: %s", now.UTC().Format(time.RFC3339))
		}

		frame := BuildFrame(l.Secrets, now)
		if err := l.Renderer.ClearLines(height); err != nil {
			return err
		}
		if err := l.Renderer.WriteFrame(frame.Lines); err != nil {
			return err
		}
		height = frame.Height

		if err := waitFn(ctx, l.Interval); err != nil {
			return err
		}
	}
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
