package core

// Input is the input state for a single simulation tick. The host fills
// one frame from its event stream (keys, pointer, stroke capture) and
// hands it to Step; writes and ticks are sequenced on the same task
// queue, so the simulation never observes a half-updated frame.
type Input struct {
	// Move is the movement direction for DIG mode. The simulation
	// normalizes it, so hosts may pass raw joystick-style vectors.
	Move Vec2

	// Fire requests launching the hook (HOOK mode only).
	Fire bool

	// Magnet holds the hook's magnetizing flag for this frame.
	Magnet bool

	// Stroke is the completed puzzle stroke, in world units. It is only
	// consumed when StrokeDone is set.
	Stroke []Vec2

	// StrokeDone signals that the stroke is finished and should be
	// converted to terrain (PUZZLE mode only).
	StrokeDone bool

	// Pause toggles the pause flag.
	Pause bool
}

// Clear resets all one-shot fields for the next frame. Move is kept:
// hosts with non-analog input hold the last direction until changed.
func (in *Input) Clear() {
	in.Fire = false
	in.StrokeDone = false
	in.Stroke = nil
	in.Pause = false
}
