package core

import "testing"

func TestInputFrameLastDirectionWins(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionRestart)
	f.Set(ActionLeft)

	if f.Direction() != ActionLeft {
		t.Errorf("Direction() = %v, expected Left", f.Direction())
	}
	if !f.Has(ActionRestart) {
		t.Error("non-directional actions should still be recorded")
	}

	f.Clear()
	if f.Direction() != ActionNone || f.Has(ActionUp) {
		t.Error("Clear should drop every action")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionDown) || c.Direction() != ActionDown {
		t.Error("Clone should not share state with the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionRight)
	if !f.Has(ActionRight) {
		t.Error("Set on a zero frame should allocate")
	}
}
