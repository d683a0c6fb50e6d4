package survival

import (
	"testing"

	"github.com/currentlycrafting/survival/internal/core"
)

func TestCameraOffset(t *testing.T) {
	got := CameraOffset(core.Vec{X: 570, Y: 570}, 800, 600)
	expected := core.Vec{X: 170, Y: 270}
	if got != expected {
		t.Errorf("CameraOffset() = %v, expected %v", got, expected)
	}
}
