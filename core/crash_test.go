package core

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTerm struct{ finis int }

func (f *fakeTerm) Fini() { f.finis++ }

// capture swaps the process hooks for the duration of a test
func capture(t *testing.T) (*fakeTerm, *bytes.Buffer, *[]int) {
	t.Helper()
	term := &fakeTerm{}
	var out bytes.Buffer
	var codes []int

	SetTerminal(term)
	mu.Lock()
	prevOut, prevExit := crashOut, exit
	crashOut = &out
	exit = func(code int) { codes = append(codes, code) }
	mu.Unlock()

	t.Cleanup(func() {
		SetTerminal(nil)
		mu.Lock()
		crashOut, exit = prevOut, prevExit
		mu.Unlock()
	})
	return term, &out, &codes
}

func TestHandleCrash(t *testing.T) {
	term, out, codes := capture(t)

	HandleCrash("boom")
	assert.Equal(t, 1, term.finis)
	assert.Contains(t, out.String(), "AI-ENTITY CRASHED: boom")
	assert.Contains(t, out.String(), "Stack Trace:")
	assert.Equal(t, []int{1}, *codes)

	HandleCrash(nil)
	assert.Equal(t, []int{1}, *codes, "nil is not a crash")
}

func TestRestoreTerminalOnce(t *testing.T) {
	term, _, _ := capture(t)
	RestoreTerminal()
	RestoreTerminal()
	assert.Equal(t, 1, term.finis)

	SetTerminal(nil)
	assert.NotPanics(t, RestoreTerminal)
}

func TestGuard(t *testing.T) {
	term, out, codes := capture(t)

	err := Guard(func() error { panic("inside task") })()
	require.NoError(t, err)
	assert.Equal(t, 1, term.finis)
	assert.Contains(t, out.String(), "inside task")
	assert.Equal(t, []int{1}, *codes)

	assert.ErrorIs(t, Guard(func() error { return os.ErrClosed })(), os.ErrClosed)
}

func TestGo(t *testing.T) {
	_, out, codes := capture(t)

	var wg sync.WaitGroup
	wg.Add(1)
	mu.Lock()
	exit = func(code int) {
		*codes = append(*codes, code)
		wg.Done()
	}
	mu.Unlock()

	Go(func() { panic("in goroutine") })
	wg.Wait()
	assert.Contains(t, out.String(), "in goroutine")
}
