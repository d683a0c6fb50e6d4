package tui

import (
	"strings"
	"testing"

	"github.com/currentlycrafting/survival/internal/config"
	"github.com/currentlycrafting/survival/internal/core"
	"github.com/currentlycrafting/survival/internal/survival"
)

func TestDrawViewCentersPlayer(t *testing.T) {
	s, err := survival.NewSession(config.DefaultConfig(), survival.WithSeed(1))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	screen := core.NewScreen(40, 21)

	DrawView(screen, s.View(), 0)

	if got := screen.Get(20, 11); got != playerGlyph {
		t.Errorf("Get(20, 11) = %q, expected player", got)
	}
	if got := screen.Get(21, 11); got != playerGlyph {
		t.Errorf("player should span two columns, got %q", got)
	}
	if got := screen.Get(0, 1); got != wallGlyph {
		t.Errorf("top-left tile = %q, expected wall", got)
	}
	if got := screen.Get(2, 2); got != floorGlyph {
		t.Errorf("interior tile = %q, expected floor", got)
	}
	if hud := screen.Row(0); !strings.HasPrefix(hud, " Time 0:00  Level 1  Longest 0:00") {
		t.Errorf("HUD = %q", hud)
	}
}

func TestDrawViewBanners(t *testing.T) {
	tests := []struct {
		name     string
		phase    survival.Phase
		paused   bool
		expected string
	}{
		{"level up", survival.PhaseLevelingUp, false, "LEVEL 2"},
		{"boss announce", survival.PhaseBossAnnounce, false, "BOSS BATTLE!"},
		{"boss battle", survival.PhaseBossBattle, false, " BOSS "},
		{"paused", survival.PhaseNormal, true, "PAUSED"},
	}

	m := survival.NewObstacleMap(20, 20, 60)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			screen := core.NewScreen(60, 20)
			v := survival.View{
				Map:     m,
				Player:  survival.PlayerStart(m),
				Phase:   tc.phase,
				Paused:  tc.paused,
				Level:   2,
				Elapsed: "0:00",
				Longest: "0:00",
			}
			DrawView(screen, v, 0)
			if !strings.Contains(screen.String(), tc.expected) {
				t.Errorf("screen does not contain %q:\n%s", tc.expected, screen.String())
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawTextColored(0, 0, "ab", core.ColorRed)
	screen.DrawText(2, 0, "cd")

	out := RenderScreen(screen)
	if !strings.Contains(out, "cd") || strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() = %q", out)
	}
}

func TestDrawViewWithoutMap(t *testing.T) {
	screen := core.NewScreen(10, 5)
	screen.DrawText(0, 0, "stale")

	DrawView(screen, survival.View{}, 0)
	if strings.TrimSpace(screen.String()) != "" {
		t.Error("screen was not cleared")
	}
}
