package game

import (
	"context"
	"time"

	cfg "github.com/automoto/slimerun/config"
)

// InputSource produces the input for the next frame.
type InputSource interface {
	Next(d *Driver) InputSnapshot
}

// Loop ticks a driver at a fixed rate until the stage ends, the frame limit is
// reached or the context is cancelled.
type Loop struct {
	driver    *Driver
	input     InputSource
	tickRate  int
	maxFrames int
	realtime  bool
}

// NewLoop creates a loop. With realtime false frames run back to back and the
// clock advances by one tick per frame. A tick rate below 1 is raised to 1.
func NewLoop(driver *Driver, input InputSource, tickRate int, realtime bool) *Loop {
	if tickRate < 1 {
		tickRate = 1
	}
	return &Loop{
		driver:   driver,
		input:    input,
		tickRate: tickRate,
		realtime: realtime,
	}
}

// WithFrameLimit stops the loop after n frames; zero means no limit.
func (l *Loop) WithFrameLimit(n int) *Loop {
	l.maxFrames = n
	return l
}

func (l *Loop) tick() time.Duration {
	return time.Second / time.Duration(l.tickRate)
}

// Run steps the driver from start until it leaves the Running state and returns
// the number of frames run.
func (l *Loop) Run(ctx context.Context, start time.Duration) (int, error) {
	var ticker *time.Ticker
	if l.realtime {
		ticker = time.NewTicker(l.tick())
		defer ticker.Stop()
	}

	l.driver.logger.Debug("loop started", "tps", l.tickRate, "realtime", l.realtime)

	frames := 0
	for l.driver.State() == cfg.StateRunning {
		if l.maxFrames > 0 && frames >= l.maxFrames {
			break
		}
		if ticker != nil {
			select {
			case <-ctx.Done():
				return frames, ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return frames, err
		}

		frames++
		now := start + time.Duration(frames)*l.tick()
		if err := l.driver.Step(l.input.Next(l.driver), now); err != nil {
			return frames, err
		}
	}

	l.driver.logger.Debug("loop stopped", "frames", frames)
	return frames, nil
}
