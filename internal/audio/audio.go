// Package audio plays the game's music and event tones through the system
// speaker. It implements survival.Notifier so the director drives it like
// any other observer. Audio is best effort: a missing device or asset is
// logged and the game runs silently.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// Track file names looked up in the assets directory.
const (
	GameMusic = "game_music.wav"
	BossTheme = "boss_theme.wav"
)

// Player owns the speaker mixer and the currently looping music track.
type Player struct {
	mu     sync.Mutex
	assets string
	logger *log.Logger

	mixer       *beep.Mixer
	music       *beep.Ctrl
	playing     string
	tracks      map[string]*beep.Buffer // nil entry: asset failed to load
	initialized bool
}

// New creates a player reading music from the assets directory. Nothing is
// played until Initialize succeeds.
func New(assets string, logger *log.Logger) *Player {
	return &Player{
		assets: assets,
		logger: logger,
		mixer:  &beep.Mixer{},
		tracks: make(map[string]*beep.Buffer),
	}
}

// Initialize opens the speaker and starts the game music.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.loopLocked(GameMusic)
	return nil
}

// Close silences the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.music = nil
	p.playing = ""
	p.initialized = false
}

// Playing returns the name of the looping track, if any.
func (p *Player) Playing() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// OnLevelUp plays a rising three-tone jingle.
func (p *Player) OnLevelUp(level int) {
	p.tones(tone{660, 90 * time.Millisecond}, tone{880, 90 * time.Millisecond}, tone{1320, 140 * time.Millisecond})
}

// OnBossBattleStart swaps the music for the boss theme.
func (p *Player) OnBossBattleStart() {
	p.loop(BossTheme)
}

// OnBossBattleEnd returns to the game music.
func (p *Player) OnBossBattleEnd() {
	p.loop(GameMusic)
}

// OnGameOver stops the music and plays a falling jingle.
func (p *Player) OnGameOver() {
	p.stopMusic()
	p.tones(tone{392, 200 * time.Millisecond}, tone{262, 200 * time.Millisecond}, tone{131, 400 * time.Millisecond})
}

// OnRestart starts the game music again.
func (p *Player) OnRestart() {
	p.loop(GameMusic)
}

func (p *Player) loop(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loopLocked(name)
}

// loopLocked swaps the looping music for name. Caller holds p.mu.
func (p *Player) loopLocked(name string) {
	if !p.initialized || p.playing == name {
		return
	}
	buf := p.trackLocked(name)

	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
		p.music.Streamer = nil
	}
	p.music = nil
	if buf != nil {
		p.music = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
		p.mixer.Add(p.music)
	}
	speaker.Unlock()

	p.playing = ""
	if buf != nil {
		p.playing = name
	}
}

func (p *Player) stopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	p.music.Streamer = nil
	speaker.Unlock()
	p.music = nil
	p.playing = ""
}

// trackLocked returns the decoded track, loading it on first use.
func (p *Player) trackLocked(name string) *beep.Buffer {
	if buf, ok := p.tracks[name]; ok {
		return buf
	}
	buf, err := loadTrack(filepath.Join(p.assets, name))
	if err != nil {
		p.logger.Warn("music unavailable", "track", name, "error", err)
	}
	p.tracks[name] = buf
	return buf
}

// loadTrack decodes a WAV file into memory at the speaker's sample rate.
func loadTrack(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open track: %w", err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}
	format.SampleRate = sampleRate

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", filepath.Base(path), err)
	}
	return buf, nil
}

type tone struct {
	freq float64
	dur  time.Duration
}

// tones plays a short sequence of sine tones over the music.
func (p *Player) tones(ts ...tone) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := sequence(ts...)
	if err != nil {
		p.logger.Warn("cannot build tone", "error", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func sequence(ts ...tone) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(ts))
	for _, t := range ts {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(t.dur), sine))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -2}, nil
}
