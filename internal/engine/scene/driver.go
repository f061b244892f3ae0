package scene

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/zincmorph/internal/logger"
)

// Driver stands in for the host render loop: every tick it measures the
// elapsed wall-clock time and renders all attached scenes with it.
type Driver struct {
	now      func() time.Time
	last     time.Time
	started  bool
	playing  bool
	playRate float64
	scenes   []*Scene
	log      *zap.Logger
}

// NewDriver returns a paused driver. now defaults to time.Now.
func NewDriver(now func() time.Time, playRate float64, log *zap.Logger) *Driver {
	if now == nil {
		now = time.Now
	}
	return &Driver{now: now, playRate: playRate, log: logger.OrNop(log)}
}

// AddScene attaches s to the loop.
func (d *Driver) AddScene(s *Scene) {
	d.scenes = append(d.scenes, s)
}

// RemoveScene detaches s. It reports whether s was attached.
func (d *Driver) RemoveScene(s *Scene) bool {
	for i, sc := range d.scenes {
		if sc == s {
			d.scenes = append(d.scenes[:i], d.scenes[i+1:]...)
			return true
		}
	}
	return false
}

// Scenes returns the attached scenes.
func (d *Driver) Scenes() []*Scene { return d.scenes }

// Play starts the animation.
func (d *Driver) Play() {
	d.playing = true
	d.log.Debug("playback started")
}

// Pause stops the animation. Ticks keep running so objects can still react
// to SetMorphTime.
func (d *Driver) Pause() {
	d.playing = false
	d.log.Debug("playback paused")
}

func (d *Driver) Playing() bool { return d.playing }

func (d *Driver) PlayRate() float64 { return d.playRate }

// SetPlayRate sets how many animation time units pass per second.
func (d *Driver) SetPlayRate(rate float64) { d.playRate = rate }

// Tick renders all scenes with the time elapsed since the previous tick
// and returns it in seconds. The first tick has zero elapsed time.
func (d *Driver) Tick() float64 {
	now := d.now()
	var dt float64
	if d.started {
		dt = now.Sub(d.last).Seconds()
	}
	d.last, d.started = now, true

	for _, s := range d.scenes {
		s.RenderGeometriesAt(d.playRate, dt, d.playing)
	}
	return dt
}

// Run ticks every interval until ctx is cancelled.
func (d *Driver) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.log.Info("driver loop started", zap.Duration("interval", interval), zap.Int("scenes", len(d.scenes)))
	frames := 0
	for {
		select {
		case <-ctx.Done():
			d.log.Info("driver loop stopped", zap.Int("frames", frames))
			return ctx.Err()
		case <-ticker.C:
			d.Tick()
			frames++
		}
	}
}
