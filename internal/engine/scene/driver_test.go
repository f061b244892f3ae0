package scene

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) step(d time.Duration) { c.t = c.t.Add(d) }

func TestDriverTick(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := newTestScene()
	g := s.AddGeometry(nil, "m", segment(), nil, true, false)

	d := NewDriver(clock.now, 1000, nil)
	d.AddScene(s)

	if dt := d.Tick(); dt != 0 {
		t.Errorf("first Tick() = %v, want 0", dt)
	}

	clock.step(250 * time.Millisecond)
	d.Tick()
	if g.CurrentTime() != 0 {
		t.Errorf("paused driver moved time to %v", g.CurrentTime())
	}

	d.Play()
	clock.step(500 * time.Millisecond)
	if dt := d.Tick(); dt != 0.5 {
		t.Errorf("Tick() = %v, want 0.5", dt)
	}
	if got := g.CurrentTime(); got != 500 {
		t.Errorf("CurrentTime() = %v, want 500", got)
	}

	d.SetPlayRate(2000)
	clock.step(time.Second)
	d.Tick()
	if got := g.CurrentTime(); got != 2500 {
		t.Errorf("CurrentTime() = %v, want 2500", got)
	}

	clock.step(time.Second)
	d.Tick()
	if got := g.CurrentTime(); got != 1500 {
		t.Errorf("CurrentTime() = %v, want 1500 after wrapping", got)
	}
}

func TestDriverScenes(t *testing.T) {
	d := NewDriver(nil, 500, nil)
	a, b := newTestScene(), newTestScene()
	d.AddScene(a)
	d.AddScene(b)
	if !d.RemoveScene(a) || d.RemoveScene(a) {
		t.Error("RemoveScene reported wrong result")
	}
	if len(d.Scenes()) != 1 || d.Scenes()[0] != b {
		t.Errorf("Scenes() = %v", d.Scenes())
	}
	if d.Playing() {
		t.Error("new driver should be paused")
	}
}

func TestDriverRunStopsOnCancel(t *testing.T) {
	d := NewDriver(nil, 500, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Run(ctx, time.Millisecond); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
