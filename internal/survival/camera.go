package survival

import "github.com/currentlycrafting/survival/internal/core"

// CameraOffset returns the world position of the viewport's top-left corner
// for a viewport of viewW x viewH pixels following the player.
func CameraOffset(player core.Vec, viewW, viewH float64) core.Vec {
	return core.Vec{X: player.X - viewW/2, Y: player.Y - viewH/2}
}
