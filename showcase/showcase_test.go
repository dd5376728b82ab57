package showcase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ai-entity/engine"
	"github.com/lixenwraith/ai-entity/vmath"
)

type fakePanel struct {
	title   string
	lines   []string
	cursor  bool
	visible bool
	shows   int
}

func (p *fakePanel) SetTitle(title string)   { p.title = title }
func (p *fakePanel) SetLines(lines []string) { p.lines = append([]string(nil), lines...) }
func (p *fakePanel) SetCursor(on bool)       { p.cursor = on }
func (p *fakePanel) Show()                   { p.visible = true; p.shows++ }
func (p *fakePanel) Hide()                   { p.visible = false }

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// Constant draws make every character take exactly 40ms
func newTestShowcase() (*Showcase, *fakePanel, *engine.MockTimeProvider) {
	panel := &fakePanel{}
	clock := engine.NewMockTimeProvider(epoch)
	s := New(panel, WithClock(clock), WithRand(vmath.NewSequence(0.5)))
	return s, panel, clock
}

func scriptText(name string) string {
	return strings.Join(Script(name), "\n") + "\n"
}

func TestTypeMessage_OneCharPerDelay(t *testing.T) {
	s, panel, clock := newTestShowcase()
	require.True(t, s.TypeMessage("hi"))
	assert.True(t, panel.visible)

	s.Update(clock.Now())
	assert.Equal(t, "h", s.Text())
	assert.True(t, panel.cursor)

	s.Update(clock.Advance(39 * time.Millisecond))
	assert.Equal(t, "h", s.Text())

	s.Update(clock.Advance(time.Millisecond))
	assert.Equal(t, "hi", s.Text())

	s.Update(clock.Advance(40 * time.Millisecond))
	assert.Equal(t, "hi\n", s.Text())
	assert.True(t, s.Typing())

	s.Update(clock.Advance(40 * time.Millisecond))
	assert.False(t, s.Typing())
	assert.False(t, panel.cursor)
	assert.Equal(t, []string{"hi", ""}, panel.lines)
}

func TestTypeMessage_SingleTypist(t *testing.T) {
	s, _, clock := newTestShowcase()
	require.True(t, s.TypeMessage("abc"))
	assert.False(t, s.TypeMessage("xyz"))

	s.Update(clock.Advance(time.Second))
	assert.Equal(t, "abc\n", s.Text())

	assert.True(t, s.TypeMessage("xyz"), "accepted once the typist is free")
}

func TestCharDelayBounds(t *testing.T) {
	for _, v := range []float64{0, 0.999} {
		tw := typewriter{rng: vmath.NewSequence(v)}
		d := tw.delay()
		assert.GreaterOrEqual(t, d, CharDelayMin)
		assert.Less(t, d, CharDelayMax)
	}
}

func TestDemonstrate_TypesWholeScript(t *testing.T) {
	s, _, clock := newTestShowcase()
	s.Demonstrate("memory")
	assert.Equal(t, "memory", s.Capability())

	s.Update(clock.Advance(time.Minute))
	assert.Equal(t, scriptText("memory"), s.Text())
	assert.False(t, s.Typing())
}

func TestDemonstrate_LineGap(t *testing.T) {
	s, _, clock := newTestShowcase()
	s.Demonstrate("rag")
	first := Script("rag")[0] + "\n"

	// Every rune of the first line plus its completion
	done := time.Duration(len([]rune(first))) * 40 * time.Millisecond
	s.Update(clock.Advance(done))
	assert.Equal(t, first, s.Text())

	s.Update(clock.Advance(LineGap - time.Millisecond))
	assert.Equal(t, first, s.Text(), "second line waits for the gap")

	s.Update(clock.Advance(time.Millisecond))
	assert.Equal(t, first+">", s.Text()[:len(first)+1])
}

func TestDemonstrate_UnknownFallsBackToRag(t *testing.T) {
	s, _, clock := newTestShowcase()
	s.Demonstrate("bogus")
	assert.Equal(t, "rag", s.Capability())

	s.Update(clock.Advance(time.Minute))
	assert.Equal(t, scriptText("rag"), s.Text())
}

func TestDemonstrate_ClearsPrevious(t *testing.T) {
	s, panel, clock := newTestShowcase()
	s.Demonstrate("rag")
	s.Update(clock.Advance(time.Second))
	require.NotEmpty(t, s.Text())

	s.Demonstrate("tools")
	assert.Empty(t, s.Text())
	assert.Nil(t, panel.lines)

	s.Update(clock.Advance(time.Minute))
	assert.Equal(t, scriptText("tools"), s.Text())
	assert.NotContains(t, s.Text(), "rag")
}

func TestStartDemo_Timeline(t *testing.T) {
	s, panel, clock := newTestShowcase()
	s.StartDemo()
	assert.True(t, panel.visible)

	s.Update(clock.Advance(BootDelay - time.Millisecond))
	assert.Empty(t, s.Text())

	s.Update(clock.Advance(time.Millisecond))
	assert.Equal(t, "I", s.Text())

	s.Update(clock.Advance(1500 * time.Millisecond))
	assert.Equal(t, BootMessage+"\n", s.Text())

	s.Update(clock.Advance(FirstDemoDelay - BootDelay - 1500*time.Millisecond))
	assert.True(t, strings.HasPrefix(s.Text(), ">"), "boot output cleared for the first capability")
	assert.Equal(t, "rag", s.Capability())

	s.Update(clock.Advance(time.Minute))
	assert.Equal(t, scriptText("rag"), s.Text())
}

func TestStartDemo_CatchUpInOneUpdate(t *testing.T) {
	s, _, clock := newTestShowcase()
	s.StartDemo()
	s.Update(clock.Advance(time.Minute))
	assert.Equal(t, scriptText("rag"), s.Text())
}

func TestNextCapability(t *testing.T) {
	s, _, _ := newTestShowcase()
	var seen []string
	for i := 0; i < len(Capabilities)+1; i++ {
		s.NextCapability()
		seen = append(seen, s.Capability())
	}
	assert.Equal(t, []string{"memory", "tools", "deploy", "rag", "memory"}, seen)
}

func TestHandleNode(t *testing.T) {
	s, panel, clock := newTestShowcase()

	assert.False(t, s.HandleNode(-1))
	assert.False(t, s.HandleNode(4))
	assert.False(t, panel.visible)

	assert.True(t, s.HandleNode(0))
	s.Update(clock.Advance(time.Minute))
	assert.True(t, strings.HasPrefix(s.Text(), "> whoami"))

	assert.True(t, s.HandleNode(DemoNode))
	assert.Empty(t, s.Text(), "demo clears the panel")
	s.Update(clock.Advance(time.Minute))
	assert.Equal(t, scriptText("rag"), s.Text())

	assert.True(t, s.HandleNode(3))
	s.Update(clock.Advance(time.Minute))
	assert.Contains(t, s.Text(), "tof-learning")
}

func TestHide(t *testing.T) {
	s, panel, clock := newTestShowcase()
	s.Demonstrate("deploy")
	s.Update(clock.Advance(time.Second))

	s.Hide()
	assert.False(t, panel.visible)
	assert.False(t, s.Visible())
	assert.False(t, s.Typing())

	s.Update(clock.Advance(time.Minute))
	assert.Empty(t, s.Text())
}
