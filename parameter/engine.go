package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the default simulation and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFPS is the frame rate FrameUpdateInterval approximates
	DefaultFPS = 60

	// MaxFPS caps the --fps flag
	MaxFPS = 240

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256

	// TimerQueueSize is the buffered capacity of the deferred callback channel
	TimerQueueSize = 64
)

// World Units
const (
	// CellWidth is world units per terminal column
	CellWidth = 4.0

	// CellHeight is world units per terminal row, a cell is roughly twice as tall as wide
	CellHeight = 8.0
)
