package showcase

import (
	"strings"
	"time"

	"github.com/lixenwraith/ai-entity/vmath"
)

// Typing cadence
const (
	CharDelayMin = 30 * time.Millisecond
	CharDelayMax = 50 * time.Millisecond
	LineGap      = 200 * time.Millisecond
)

// typewriter reveals text one rune at a time against an external clock.
// Only one message types at a time
type typewriter struct {
	rng vmath.Source

	text    strings.Builder
	current []rune
	pos     int
	typing  bool
	nextAt  time.Time
	done    func(now time.Time)
}

// start begins typing msg at now; ignored while another message is typing
func (t *typewriter) start(msg string, now time.Time, done func(now time.Time)) bool {
	if t.typing {
		return false
	}
	t.current = []rune(msg)
	t.pos = 0
	t.typing = true
	t.nextAt = now
	t.done = done
	return true
}

// advance emits every rune due by now. Reports whether anything happened,
// either text written or the message completing
func (t *typewriter) advance(now time.Time) bool {
	changed := false
	for t.typing && !now.Before(t.nextAt) {
		if t.pos < len(t.current) {
			t.text.WriteRune(t.current[t.pos])
			t.pos++
			changed = true
			t.nextAt = t.nextAt.Add(t.delay())
			continue
		}
		t.typing = false
		changed = true
		done := t.done
		t.done = nil
		if done != nil {
			done(t.nextAt)
		}
	}
	return changed
}

func (t *typewriter) delay() time.Duration {
	span := float64(CharDelayMax - CharDelayMin)
	return CharDelayMin + time.Duration(t.rng.Float64()*span)
}

// reset clears the output and abandons any message in flight
func (t *typewriter) reset() {
	t.text.Reset()
	t.current = nil
	t.pos = 0
	t.typing = false
	t.done = nil
}

func (t *typewriter) lines() []string {
	return strings.Split(t.text.String(), "\n")
}
