package survival

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/currentlycrafting/survival/internal/core"
)

func TestLoopRunsUntilCancelled(t *testing.T) {
	s, _ := newSession(t, quietConfig())
	start := s.world.Player.Pos

	var input core.IntentFlags
	input.Press(core.ActionRight)

	frames := 0
	var last View
	loop := NewLoop(s, &input, func(v View) {
		frames++
		last = v
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	require.NoError(t, loop.Run(ctx))

	assert.Positive(t, frames)
	assert.Greater(t, s.Snapshot().Tick, uint64(0))
	assert.Greater(t, s.world.Player.Pos.X, start.X)
	assert.Equal(t, start.Y, s.world.Player.Pos.Y)
	assert.Equal(t, s.world.Player.Pos, last.Player)
}
