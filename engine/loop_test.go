package engine

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestStep_FiresDueCallbacksInOrder(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	l := NewLoop(nil, WithClock(clock))

	var got []string
	l.After(400*time.Millisecond, func() { got = append(got, "reveal") })
	l.After(100*time.Millisecond, func() { got = append(got, "first") })
	l.After(100*time.Millisecond, func() { got = append(got, "second") })

	frames := 0
	l.OnFrame(func(time.Time) { frames++ })

	l.Step(clock.Advance(50 * time.Millisecond))
	assert.Empty(t, got)
	assert.Equal(t, 3, l.Pending())

	l.Step(clock.Advance(50 * time.Millisecond))
	assert.Equal(t, []string{"first", "second"}, got)

	l.Step(clock.Advance(299 * time.Millisecond))
	assert.Len(t, got, 2)

	l.Step(clock.Advance(time.Millisecond))
	assert.Equal(t, []string{"first", "second", "reveal"}, got)
	assert.Zero(t, l.Pending())

	assert.Equal(t, 4, frames)
	assert.Equal(t, uint64(4), l.Frames())
}

func TestStep_CallbacksRunBeforeFrame(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	l := NewLoop(nil, WithClock(clock))

	var order []string
	l.After(0, func() { order = append(order, "deferred") })
	l.OnFrame(func(time.Time) { order = append(order, "frame") })

	l.Step(clock.Now())
	assert.Equal(t, []string{"deferred", "frame"}, order)
}

func TestStep_CallbackMaySchedule(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	l := NewLoop(nil, WithClock(clock))

	fired := 0
	var tick func()
	tick = func() {
		fired++
		if fired < 3 {
			l.After(10*time.Millisecond, tick)
		}
	}
	l.After(10*time.Millisecond, tick)

	for i := 0; i < 10; i++ {
		l.Step(clock.Advance(10 * time.Millisecond))
	}
	assert.Equal(t, 3, fired)
}

func TestAfter_NilIgnored(t *testing.T) {
	l := NewLoop(nil)
	l.After(time.Second, nil)
	assert.Zero(t, l.Pending())
}

func TestRun_QuitFromHandler(t *testing.T) {
	events := make(chan tcell.Event, 4)
	l := NewLoop(events, WithInterval(time.Millisecond))

	var keys []rune
	l.OnEvent(func(ev tcell.Event) bool {
		k, ok := ev.(*tcell.EventKey)
		if !ok {
			return true
		}
		keys = append(keys, k.Rune())
		return k.Rune() != 'q'
	})

	events <- tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, []rune{'a', 'b', 'q'}, keys)

	select {
	case <-l.Done():
	default:
		t.Fatal("done not closed after Run")
	}
}

func TestRun_ContextCancel(t *testing.T) {
	l := NewLoop(nil, WithInterval(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())

	l.After(0, cancel)
	err := l.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, l.Frames(), uint64(1))
}

func TestRun_ClosedEventSourceKeepsTicking(t *testing.T) {
	events := make(chan tcell.Event)
	close(events)

	l := NewLoop(events, WithInterval(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	l.OnFrame(func(time.Time) {
		if l.Frames() >= 5 {
			cancel()
		}
	})

	_ = l.Run(ctx)
	assert.GreaterOrEqual(t, l.Frames(), uint64(5))
}

func TestStartStop(t *testing.T) {
	l := NewLoop(nil, WithInterval(time.Millisecond))
	frames := make(chan struct{}, 1)
	l.OnFrame(func(time.Time) {
		select {
		case frames <- struct{}{}:
		default:
		}
	})

	l.Start(context.Background())
	l.Start(context.Background())

	select {
	case <-frames:
	case <-time.After(2 * time.Second):
		t.Fatal("no frame")
	}

	l.Stop()
	l.Stop()
	<-l.Done()
}

func TestStopBeforeStart(t *testing.T) {
	l := NewLoop(nil)
	l.Stop()
	require.NoError(t, l.Run(context.Background()), "stopped loop returns immediately")
}

func TestStart_RecoversPanic(t *testing.T) {
	crashed := make(chan any, 1)
	l := NewLoop(nil, WithInterval(time.Millisecond), WithCrashHandler(func(r any) { crashed <- r }))
	l.OnFrame(func(time.Time) { panic("boom") })

	l.Start(context.Background())
	select {
	case r := <-crashed:
		assert.Equal(t, "boom", r)
	case <-time.After(2 * time.Second):
		t.Fatal("crash handler not called")
	}
	l.Stop()
	<-l.Done()
}

func TestIntervalForFPS(t *testing.T) {
	assert.Equal(t, time.Second/60, IntervalForFPS(60))
	assert.Equal(t, time.Second, IntervalForFPS(0))
	assert.Equal(t, time.Second/240, IntervalForFPS(1000))
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	assert.True(t, mock.Now().Equal(epoch))

	next := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(next)
	assert.True(t, mock.Now().Equal(next))

	got := mock.Advance(90 * time.Minute)
	assert.True(t, got.Equal(next.Add(90*time.Minute)))
	assert.True(t, mock.Now().Equal(got))
}

func TestTimeProvider(t *testing.T) {
	p := NewTimeProvider()
	t1 := p.Now()
	time.Sleep(5 * time.Millisecond)
	assert.True(t, p.Now().After(t1))
}
