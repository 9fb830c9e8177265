// Package audio plays the background music loop and the fire sound effect.
//
// Sounds are decoded once at startup into memory buffers. Playback goes
// through beep's speaker, which mixes on its own goroutine, so every Play
// call returns immediately.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/space-shooter/internal/config"
)

const (
	sampleRate = beep.SampleRate(44100)
	resampleQ  = 4
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Player is what the game needs from the sound system.
type Player interface {
	PlayFire() error
}

// Engine owns the decoded sounds and the speaker.
type Engine struct {
	mu      sync.Mutex
	music   *beep.Buffer // nil when music is synthesized
	fire    *beep.Buffer
	volume  float64
	started bool
}

// Load decodes the configured sounds. Empty paths select built-in sounds.
// A configured file that cannot be read or decoded is an error.
func Load(cfg config.AudioConfig) (*Engine, error) {
	e := &Engine{volume: cfg.Volume}

	if cfg.Music != "" {
		buf, err := decodeFile(cfg.Music)
		if err != nil {
			return nil, err
		}
		e.music = buf
	}

	if cfg.Fire != "" {
		buf, err := decodeFile(cfg.Fire)
		if err != nil {
			return nil, err
		}
		e.fire = buf
	} else {
		e.fire = beep.NewBuffer(format)
		e.fire.Append(beep.Take(sampleRate.N(fireDuration), newPewGenerator(sampleRate)))
	}

	return e, nil
}

// decodeFile reads a WAV or MP3 file fully into a buffer at the engine rate.
func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		srcFmt   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, srcFmt, err = wav.Decode(f)
	case ".mp3":
		streamer, srcFmt, err = mp3.Decode(f)
	default:
		return nil, fmt.Errorf("audio: unsupported format %q (want .wav or .mp3)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	if srcFmt.SampleRate == sampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(resampleQ, srcFmt.SampleRate, sampleRate, streamer))
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio: %s contains no samples", path)
	}
	return buf, nil
}

// Start opens the audio device and begins the music loop.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open output device: %w", err)
	}

	var music beep.Streamer
	if e.music != nil {
		music = beep.Loop(-1, e.music.Streamer(0, e.music.Len()))
	} else {
		music = newMusicGenerator(sampleRate)
	}
	speaker.Play(e.withVolume(music))

	e.started = true
	return nil
}

// PlayFire starts one fire sound without waiting for it.
func (e *Engine) PlayFire() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return nil
	}
	speaker.Play(e.withVolume(e.fire.Streamer(0, e.fire.Len())))
	return nil
}

// Close stops all sounds and releases the device.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.started = false
}

// FireSamples returns the length of the fire sound in samples.
func (e *Engine) FireSamples() int {
	return e.fire.Len()
}

func (e *Engine) withVolume(s beep.Streamer) beep.Streamer {
	if e.volume == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: e.volume}
}

// Silent is a Player that does nothing. Used when audio is disabled or
// the device is unavailable.
type Silent struct{}

// PlayFire implements Player.
func (Silent) PlayFire() error { return nil }
